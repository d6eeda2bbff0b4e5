package financial

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

var categories = map[string]bool{
	"service":   true,
	"product":   true,
	"rent":      true,
	"utilities": true,
	"salary":    true,
	"supplies":  true,
	"marketing": true,
	"other":     true,
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentOther    PaymentMethod = "other"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case "":
		return PaymentCash, nil
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentOther:
		return PaymentMethod(s), nil
	}
	return "", httperr.ErrBusiness("invalid_payment_method")
}

// Validate confere tipo, categoria, valor e forma de pagamento antes de gravar.
func Validate(tx *models.Transaction) error {
	if Type(tx.Type) != TypeIncome && Type(tx.Type) != TypeExpense {
		return httperr.ErrBusiness("invalid_transaction_type")
	}
	if tx.Category == "" {
		tx.Category = "other"
	}
	if !categories[tx.Category] {
		return httperr.ErrBusiness("invalid_category")
	}
	if tx.Amount.IsNegative() {
		return httperr.ErrBusiness("invalid_amount")
	}
	tx.Amount = tx.Amount.Round(2)
	pm, err := ParsePaymentMethod(tx.PaymentMethod)
	if err != nil {
		return err
	}
	tx.PaymentMethod = string(pm)
	return nil
}

type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int
}

func Sum(txs []models.Transaction) Totals {
	t := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range txs {
		switch Type(tx.Type) {
		case TypeIncome:
			t.Income = t.Income.Add(tx.Amount)
		case TypeExpense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
		t.Count++
	}
	t.Net = t.Income.Sub(t.Expense)
	return t
}

// ApplyTotals sobrescreve os totais do resumo diário mantendo id e data.
func ApplyTotals(s *models.DailySummary, t Totals) {
	s.TotalIncome = t.Income.Round(2)
	s.TotalExpense = t.Expense.Round(2)
	s.NetBalance = t.Net.Round(2)
	s.TransactionCount = t.Count
}
