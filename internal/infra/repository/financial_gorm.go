package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/financial"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type FinancialGormRepository struct {
	db *gorm.DB
}

func NewFinancialGormRepository(db *gorm.DB) *FinancialGormRepository {
	return &FinancialGormRepository{db: db}
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *FinancialGormRepository) SaveTransaction(ctx context.Context, tx *models.Transaction) error {
	return upsert(r.db.WithContext(ctx), tx)
}

func (r *FinancialGormRepository) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "transaction_not_found")
	}
	return &tx, nil
}

func (r *FinancialGormRepository) DeleteTransaction(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("transaction_not_found")
	}
	return nil
}

func (r *FinancialGormRepository) ListTransactions(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Transaction, error) {

	q := r.db.WithContext(ctx).Model(&models.Transaction{})
	if f.From != "" {
		q = q.Where("date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("date <= ?", f.To)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var txs []models.Transaction
	if err := q.Order("date DESC, created_at DESC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *FinancialGormRepository) ListTransactionsByDate(ctx context.Context, date string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("created_at ASC").
		Find(&txs).Error
	return txs, err
}

// --------------------------------------------------
// Daily summary
// --------------------------------------------------

func (r *FinancialGormRepository) GetSummaryByDate(ctx context.Context, date string) (*models.DailySummary, error) {
	var s models.DailySummary
	if err := r.db.WithContext(ctx).First(&s, "date = ?", date).Error; err != nil {
		return nil, notFound(err, "summary_not_found")
	}
	return &s, nil
}

// SaveSummary faz upsert pela data, que é única.
func (r *FinancialGormRepository) SaveSummary(ctx context.Context, s *models.DailySummary) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_income",
			"total_expense",
			"net_balance",
			"transaction_count",
			"updated_at",
		}),
	}).Create(s).Error
}

func (r *FinancialGormRepository) ListSummaries(ctx context.Context, from, to string) ([]models.DailySummary, error) {
	var out []models.DailySummary
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&out).Error
	return out, err
}

var _ domain.Repository = (*FinancialGormRepository)(nil)
