package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is the single item sold on the payment page. UnitPrice is expressed in
// major currency units.
type Product struct {
	Name        string          `validate:"required,max=250"`
	Description string          `validate:"max=500"`
	Currency    string          `validate:"required,currency"`
	UnitPrice   decimal.Decimal `validate:"gt=0"`
	Quantity    int64           `validate:"min=1"`
}

// DefaultProduct returns the charging top-up offered by the service.
func DefaultProduct() Product {
	return Product{
		Name:        "Recharge de véhicule électrique",
		Description: "Session de recharge sur borne, paiement unique",
		Currency:    "eur",
		UnitPrice:   decimal.RequireFromString("5.00"),
		Quantity:    1,
	}
}

// UnitAmount returns the price in the currency's minor unit (cents).
func (p Product) UnitAmount() int64 {
	return p.UnitPrice.Mul(decimal.NewFromInt(100)).IntPart()
}

func (p Product) DisplayPrice() string {
	return p.UnitPrice.StringFixed(2) + " " + strings.ToUpper(p.Currency)
}
