package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id        TEXT PRIMARY KEY,
    amount    REAL NOT NULL,
    category  TEXT NOT NULL,
    method    TEXT NOT NULL,
    date      TEXT NOT NULL,
    note      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS budget (
    id               INTEGER PRIMARY KEY CHECK (id = 1),
    monthly_limit    REAL NOT NULL,
    weekly_allowance REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
`
