package setup

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer é o subconjunto do pgxpool.Pool usado para rodar DDL.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Result segue o formato esperado pelo painel de configuração: em caso de
// falha o SQL é devolvido para execução manual.
type Result struct {
	Success             bool   `json:"success"`
	Message             string `json:"message,omitempty"`
	Error               string `json:"error,omitempty"`
	ManualSetupRequired bool   `json:"manualSetupRequired,omitempty"`
	SQLToRun            string `json:"sqlToRun,omitempty"`
	ScriptContent       string `json:"scriptContent,omitempty"`
}

type Setup struct {
	db      Execer
	timeout time.Duration
}

func NewSetup(db Execer, timeout time.Duration) *Setup {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Setup{db: db, timeout: timeout}
}

func (s *Setup) FinancialTables(ctx context.Context) *Result {
	return s.run(ctx, "financial tables", financialTablesSQL, false)
}

func (s *Setup) FixTransactionsTable(ctx context.Context) *Result {
	return s.run(ctx, "transactions table", fixTransactionsSQL, false)
}

func (s *Setup) StoredProcedure(ctx context.Context) *Result {
	return s.run(ctx, "stored procedure", storedProcedureSQL, true)
}

func (s *Setup) Products(ctx context.Context) *Result {
	return s.run(ctx, "products table", productsSQL, false)
}

func (s *Setup) run(ctx context.Context, name, script string, asScript bool) *Result {
	err := errors.New("database pool unavailable")
	if s.db != nil {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		_, err = s.db.Exec(ctx, script)
	}

	if err == nil {
		log.Printf("[setup] %s ready", name)
		return &Result{Success: true, Message: name + " ready"}
	}

	log.Printf("[setup] %s failed: %v", name, err)
	res := &Result{Error: err.Error(), ManualSetupRequired: true}
	if errors.Is(err, context.DeadlineExceeded) {
		res.Error = "timeout after " + s.timeout.String()
	}
	if asScript {
		res.ScriptContent = script
	} else {
		res.SQLToRun = script
	}
	return res
}
