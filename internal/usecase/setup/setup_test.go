package setup

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeExec struct {
	err   error
	block bool
	ran   []string
}

func (f *fakeExec) Exec(ctx context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.ran = append(f.ran, sql)
	if f.block {
		<-ctx.Done()
		return pgconn.CommandTag{}, ctx.Err()
	}
	return pgconn.CommandTag{}, f.err
}

func TestSetupSuccess(t *testing.T) {
	db := &fakeExec{}
	res := NewSetup(db, time.Second).FinancialTables(context.Background())
	if !res.Success || res.ManualSetupRequired {
		t.Errorf("result = %+v", res)
	}
	if len(db.ran) != 1 || !strings.Contains(db.ran[0], "daily_summary") {
		t.Errorf("ran = %v", db.ran)
	}
}

func TestSetupFailureReturnsSQL(t *testing.T) {
	db := &fakeExec{err: errors.New("permission denied")}
	s := NewSetup(db, time.Second)

	res := s.FixTransactionsTable(context.Background())
	if res.Success || !res.ManualSetupRequired || res.SQLToRun == "" || res.ScriptContent != "" {
		t.Errorf("fix result = %+v", res)
	}

	res = s.StoredProcedure(context.Background())
	if !res.ManualSetupRequired || !strings.Contains(res.ScriptContent, "calculate_daily_summary") || res.SQLToRun != "" {
		t.Errorf("procedure result = %+v", res)
	}
}

func TestSetupTimeout(t *testing.T) {
	res := NewSetup(&fakeExec{block: true}, 20*time.Millisecond).Products(context.Background())
	if !res.ManualSetupRequired || !strings.HasPrefix(res.Error, "timeout") {
		t.Errorf("result = %+v", res)
	}
}

func TestSetupWithoutPool(t *testing.T) {
	res := NewSetup(nil, 0).FinancialTables(context.Background())
	if !res.ManualSetupRequired || res.SQLToRun == "" {
		t.Errorf("result = %+v", res)
	}
}
