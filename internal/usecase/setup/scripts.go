package setup

const financialTablesSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id              VARCHAR(36) PRIMARY KEY,
    type            VARCHAR(10) NOT NULL CHECK (type IN ('income', 'expense')),
    category        VARCHAR(20) NOT NULL,
    amount          DECIMAL(10,2) NOT NULL CHECK (amount >= 0),
    date            VARCHAR(10) NOT NULL,
    description     VARCHAR(255),
    appointment_id  VARCHAR(36),
    client_id       VARCHAR(36),
    payment_method  VARCHAR(20),
    notes           TEXT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date);
CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions (type);

CREATE TABLE IF NOT EXISTS daily_summary (
    id                 VARCHAR(36) PRIMARY KEY,
    date               VARCHAR(10) NOT NULL UNIQUE,
    total_income       DECIMAL(12,2) NOT NULL DEFAULT 0,
    total_expense      DECIMAL(12,2) NOT NULL DEFAULT 0,
    net_balance        DECIMAL(12,2) NOT NULL DEFAULT 0,
    transaction_count  INTEGER NOT NULL DEFAULT 0,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const fixTransactionsSQL = `
ALTER TABLE transactions ADD COLUMN IF NOT EXISTS appointment_id VARCHAR(36);
ALTER TABLE transactions ADD COLUMN IF NOT EXISTS client_id VARCHAR(36);
ALTER TABLE transactions ADD COLUMN IF NOT EXISTS payment_method VARCHAR(20);
ALTER TABLE transactions ADD COLUMN IF NOT EXISTS notes TEXT;
ALTER TABLE transactions ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW();
CREATE INDEX IF NOT EXISTS idx_transactions_appointment ON transactions (appointment_id);
CREATE INDEX IF NOT EXISTS idx_transactions_client ON transactions (client_id);
`

const storedProcedureSQL = `
CREATE OR REPLACE FUNCTION calculate_daily_summary(p_date VARCHAR)
RETURNS VOID AS $$
DECLARE
    v_income  DECIMAL(12,2);
    v_expense DECIMAL(12,2);
    v_count   INTEGER;
BEGIN
    SELECT
        COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
        COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0),
        COUNT(*)
    INTO v_income, v_expense, v_count
    FROM transactions
    WHERE date = p_date;

    INSERT INTO daily_summary (id, date, total_income, total_expense, net_balance, transaction_count)
    VALUES (gen_random_uuid()::VARCHAR, p_date, v_income, v_expense, v_income - v_expense, v_count)
    ON CONFLICT (date) DO UPDATE SET
        total_income      = EXCLUDED.total_income,
        total_expense     = EXCLUDED.total_expense,
        net_balance       = EXCLUDED.net_balance,
        transaction_count = EXCLUDED.transaction_count,
        updated_at        = NOW();
END;
$$ LANGUAGE plpgsql;
`

const productsSQL = `
CREATE TABLE IF NOT EXISTS products (
    id           VARCHAR(36) PRIMARY KEY,
    name         VARCHAR(120) NOT NULL,
    category     VARCHAR(50),
    description  VARCHAR(255),
    unit         VARCHAR(20),
    price        DECIMAL(10,2) NOT NULL DEFAULT 0,
    cost         DECIMAL(10,2) NOT NULL DEFAULT 0,
    stock        INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
    min_stock    INTEGER NOT NULL DEFAULT 0,
    image_key    VARCHAR(255),
    active       BOOLEAN NOT NULL DEFAULT TRUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);
`
