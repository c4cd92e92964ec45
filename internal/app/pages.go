package app

import "net/http"

func (app *Application) IndexHandler(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData()
	data.PublicKey = app.config.Stripe.PublicKey

	app.render(w, r, http.StatusOK, "index.tmpl", data)
}

func (app *Application) SuccessHandler(w http.ResponseWriter, r *http.Request) {
	data := app.newTemplateData()
	data.Reference = app.sessionManager.PopString(r.Context(), SessionKeyCheckoutReference.String())

	app.render(w, r, http.StatusOK, "success.tmpl", data)
}

func (app *Application) CancelHandler(w http.ResponseWriter, r *http.Request) {
	app.sessionManager.Remove(r.Context(), SessionKeyCheckoutReference.String())

	app.render(w, r, http.StatusOK, "cancel.tmpl", app.newTemplateData())
}
