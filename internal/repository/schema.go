package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Schema mirrors the product master and trade tables. Statements are
// idempotent so the bootstrap can run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
        prd_id  SERIAL PRIMARY KEY,
        code    BIGINT      NOT NULL,
        name    VARCHAR(50) NOT NULL,
        price   INTEGER     NOT NULL,
        tax_cd  CHAR(2)     NOT NULL DEFAULT '10',
        CONSTRAINT uq_products_code UNIQUE (code),
        CONSTRAINT chk_products_tax_cd CHECK (tax_cd IN ('10', '08', '00'))
    )`,
	`CREATE INDEX IF NOT EXISTS idx_products_name ON products (name)`,
	`CREATE TABLE IF NOT EXISTS trades (
        trd_id         SERIAL PRIMARY KEY,
        datetime       TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
        emp_cd         CHAR(10)    NOT NULL,
        store_cd       CHAR(5)     NOT NULL,
        pos_no         CHAR(3)     NOT NULL,
        ttl_amt_ex_tax INTEGER     NOT NULL DEFAULT 0,
        total_amt      INTEGER     NOT NULL DEFAULT 0
    )`,
	`CREATE INDEX IF NOT EXISTS idx_trades_datetime ON trades (datetime)`,
	`CREATE TABLE IF NOT EXISTS trade_lines (
        trd_id          INTEGER     NOT NULL REFERENCES trades (trd_id) ON DELETE RESTRICT ON UPDATE RESTRICT,
        dtl_id          INTEGER     NOT NULL,
        prd_id          INTEGER     NOT NULL REFERENCES products (prd_id) ON DELETE RESTRICT ON UPDATE RESTRICT,
        prd_code        CHAR(13)    NOT NULL,
        prd_name        VARCHAR(50) NOT NULL,
        prd_price       INTEGER     NOT NULL,
        tax_cd          CHAR(2)     NOT NULL,
        qty             INTEGER     NOT NULL DEFAULT 1,
        line_amt_ex_tax INTEGER     NOT NULL DEFAULT 0,
        line_tax        INTEGER     NOT NULL DEFAULT 0,
        line_amt        INTEGER     NOT NULL DEFAULT 0,
        PRIMARY KEY (trd_id, dtl_id)
    )`,
}

// EnsureSchema creates the tables if they do not exist yet. It runs once
// at startup, before the first request is served.
func EnsureSchema(ctx context.Context, db *sql.DB, logger *logrus.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Errorf("Schema bootstrap failed: %v", err)
			return fmt.Errorf("could not ensure schema: %w", err)
		}
	}
	logger.Info("Database schema created/verified")
	return nil
}
