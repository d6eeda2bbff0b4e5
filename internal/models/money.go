package models

import "github.com/shopspring/decimal"

// Money são euros com duas casas decimais.
type Money = decimal.Decimal

func Euros(v float64) Money {
	return decimal.NewFromFloat(v).Round(2)
}
