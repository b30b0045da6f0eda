package domain

import (
	"context"
	"errors"
)

var (
	ErrTradeNotFound      = errors.New("trade not found")
	ErrIntegrityViolation = errors.New("trade violates a data integrity constraint")
)

type TradeRepository interface {
	// CreateTrade inserts the header and all lines in a single transaction
	// and fills in the generated trd_id on trade.
	CreateTrade(ctx context.Context, trade *Trade, lines []TradeLine) error
	GetTradeByID(ctx context.Context, id int64) (*Trade, []TradeLine, error)
}
