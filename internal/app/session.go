package app

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

type sessionKey string

const (
	SessionKeyCheckoutReference = sessionKey("checkoutReference")
)

func (s sessionKey) String() string {
	return string(s)
}

func NewSessionManager(store scs.Store, env string) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = store
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = env == "prod"

	return sessionManager
}
