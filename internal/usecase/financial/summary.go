package financial

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/financial"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/timezone"
)

const summaryTTL = 5 * time.Minute

func summaryKey(date string) string {
	return "summary:" + date
}

// CloseDailyOperations recalcula o resumo do dia a partir das transações e
// grava por cima do existente, mantendo o id.
func (uc *Financial) CloseDailyOperations(ctx context.Context, date string) (*models.DailySummary, error) {
	if _, err := time.Parse(timezone.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	txs, err := uc.repo.ListTransactionsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	summary, err := uc.repo.GetSummaryByDate(ctx, date)
	switch {
	case httperr.IsBusiness(err, "summary_not_found"):
		summary = &models.DailySummary{ID: uuid.NewString(), Date: date}
	case err != nil:
		return nil, err
	}

	domain.ApplyTotals(summary, domain.Sum(txs))

	if err := uc.repo.SaveSummary(ctx, summary); err != nil {
		return nil, err
	}

	uc.cache.Delete(ctx, summaryKey(date))
	log.Printf("[financial] closed %s: income=%s expense=%s count=%d",
		date, summary.TotalIncome.StringFixed(2), summary.TotalExpense.StringFixed(2), summary.TransactionCount)

	return summary, nil
}

func (uc *Financial) GetDailySummary(ctx context.Context, date string) (*models.DailySummary, error) {
	var cached models.DailySummary
	if uc.cache.GetJSON(ctx, summaryKey(date), &cached) {
		return &cached, nil
	}

	summary, err := uc.repo.GetSummaryByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	uc.cache.SetJSON(ctx, summaryKey(date), summary, summaryTTL)
	return summary, nil
}

// ======================================================
// Period report
// ======================================================

type DayTotals struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
	Count   int             `json:"count"`
}

type PeriodReport struct {
	From       string                     `json:"from"`
	To         string                     `json:"to"`
	Income     decimal.Decimal            `json:"income"`
	Expense    decimal.Decimal            `json:"expense"`
	Net        decimal.Decimal            `json:"net"`
	Count      int                        `json:"count"`
	Days       []DayTotals                `json:"days"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
}

// PeriodReport agrega as transações do intervalo [from, to] por dia e por
// categoria. Despesas entram negativas no mapa por categoria.
func (uc *Financial) PeriodReport(ctx context.Context, from, to string) (*PeriodReport, error) {
	start, err := time.Parse(timezone.DateLayout, from)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	end, err := time.Parse(timezone.DateLayout, to)
	if err != nil || end.Before(start) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	txs, err := uc.repo.ListTransactions(ctx, domain.ListFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	byDay := map[string][]models.Transaction{}
	report := &PeriodReport{
		From:       from,
		To:         to,
		ByCategory: map[string]decimal.Decimal{},
	}

	for _, tx := range txs {
		byDay[tx.Date] = append(byDay[tx.Date], tx)

		amount := tx.Amount
		if domain.Type(tx.Type) == domain.TypeExpense {
			amount = amount.Neg()
		}
		report.ByCategory[tx.Category] = report.ByCategory[tx.Category].Add(amount)
	}

	total := domain.Sum(txs)
	report.Income = total.Income.Round(2)
	report.Expense = total.Expense.Round(2)
	report.Net = total.Net.Round(2)
	report.Count = total.Count

	report.Days = make([]DayTotals, 0, len(byDay))
	for day, list := range byDay {
		t := domain.Sum(list)
		report.Days = append(report.Days, DayTotals{
			Date:    day,
			Income:  t.Income.Round(2),
			Expense: t.Expense.Round(2),
			Net:     t.Net.Round(2),
			Count:   t.Count,
		})
	}
	sort.Slice(report.Days, func(i, j int) bool { return report.Days[i].Date < report.Days[j].Date })

	return report, nil
}
