package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TanakaTsuyoshi-10/step4backend/internal/domain"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresTradeRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresTradeRepository(db *sql.DB, logger *logrus.Logger) domain.TradeRepository {
	return &postgresTradeRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresTradeRepository) CreateTrade(ctx context.Context, trade *domain.Trade, lines []domain.TradeLine) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.log.Errorf("Failed to begin trade transaction: %v", err)
		return fmt.Errorf("could not begin trade transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	headerQuery := `
        INSERT INTO trades (datetime, emp_cd, store_cd, pos_no, ttl_amt_ex_tax, total_amt)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING trd_id`
	err = tx.QueryRowContext(ctx, headerQuery,
		trade.Datetime,
		trade.EmpCd,
		trade.StoreCd,
		trade.PosNo,
		trade.TtlAmtExTax,
		trade.TotalAmt,
	).Scan(&trade.TrdID)
	if err != nil {
		return r.classifyTradeError("insert trade header", err)
	}

	lineQuery := `
        INSERT INTO trade_lines (trd_id, dtl_id, prd_id, prd_code, prd_name, prd_price,
                                 tax_cd, qty, line_amt_ex_tax, line_tax, line_amt)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for i := range lines {
		lines[i].TrdID = trade.TrdID
		_, err = tx.ExecContext(ctx, lineQuery,
			lines[i].TrdID,
			lines[i].DtlID,
			lines[i].PrdID,
			lines[i].PrdCode,
			lines[i].PrdName,
			lines[i].PrdPrice,
			lines[i].TaxCd,
			lines[i].Qty,
			lines[i].LineAmtExTax,
			lines[i].LineTax,
			lines[i].LineAmt,
		)
		if err != nil {
			return r.classifyTradeError(fmt.Sprintf("insert trade line %d", lines[i].DtlID), err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.log.Errorf("Failed to commit trade transaction: %v", err)
		return fmt.Errorf("could not commit trade: %w", err)
	}

	r.log.Infof("Trade created successfully with ID: %d (%d lines)", trade.TrdID, len(lines))
	return nil
}

func (r *postgresTradeRepository) GetTradeByID(ctx context.Context, id int64) (*domain.Trade, []domain.TradeLine, error) {
	headerQuery := `
        SELECT trd_id, datetime, emp_cd, store_cd, pos_no, ttl_amt_ex_tax, total_amt
        FROM trades
        WHERE trd_id = $1`
	trade := &domain.Trade{}
	err := r.db.QueryRowContext(ctx, headerQuery, id).Scan(
		&trade.TrdID,
		&trade.Datetime,
		&trade.EmpCd,
		&trade.StoreCd,
		&trade.PosNo,
		&trade.TtlAmtExTax,
		&trade.TotalAmt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Trade with ID %d not found", id)
			return nil, nil, domain.ErrTradeNotFound
		}
		r.log.Errorf("Failed to get trade by ID %d: %v", id, err)
		return nil, nil, fmt.Errorf("could not get trade by id: %w", err)
	}

	linesQuery := `
        SELECT trd_id, dtl_id, prd_id, prd_code, prd_name, prd_price,
               tax_cd, qty, line_amt_ex_tax, line_tax, line_amt
        FROM trade_lines
        WHERE trd_id = $1
        ORDER BY dtl_id ASC`
	rows, err := r.db.QueryContext(ctx, linesQuery, id)
	if err != nil {
		r.log.Errorf("Failed to get trade lines for trade ID %d: %v", id, err)
		return nil, nil, fmt.Errorf("could not get trade lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.TradeLine{}
	for rows.Next() {
		var line domain.TradeLine
		if err := rows.Scan(&line.TrdID, &line.DtlID, &line.PrdID, &line.PrdCode, &line.PrdName,
			&line.PrdPrice, &line.TaxCd, &line.Qty, &line.LineAmtExTax, &line.LineTax, &line.LineAmt); err != nil {
			r.log.Errorf("Failed to scan trade line row: %v", err)
			return nil, nil, fmt.Errorf("error scanning trade line data: %w", err)
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during trade lines iteration: %v", err)
		return nil, nil, fmt.Errorf("error iterating trade lines: %w", err)
	}

	r.log.Infof("Trade retrieved successfully: ID %d (%d lines)", id, len(lines))
	return trade, lines, nil
}

// classifyTradeError keeps constraint violations distinguishable from plain
// database failures so the handler can answer 400 instead of 500.
func (r *postgresTradeRepository) classifyTradeError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		r.log.Warnf("Integrity constraint violation (%s): %s", op, pqErr.Message)
		return fmt.Errorf("%s: %w", op, domain.ErrIntegrityViolation)
	}
	r.log.Errorf("Failed to %s: %v", op, err)
	return fmt.Errorf("could not %s: %w", op, err)
}
