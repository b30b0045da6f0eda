package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/TanakaTsuyoshi-10/step4backend/internal/domain"
	"github.com/sirupsen/logrus"
)

// UnknownProductsError reports trade lines referencing product ids that do
// not exist in the product master.
type UnknownProductsError struct {
	IDs []int64
}

func (e *UnknownProductsError) Error() string {
	return fmt.Sprintf("unknown product ids: %v", e.IDs)
}

type CreateTradeLineInput struct {
	PrdID int64
	Qty   int
}

type CreateTradeInput struct {
	EmpCd   string
	StoreCd string
	PosNo   string
	Lines   []CreateTradeLineInput
}

type TradeResult struct {
	TradeID       int64
	TotalAmtExTax int
	TotalAmt      int
	TotalTax      int
}

type TradeDetail struct {
	Trade domain.Trade
	Lines []domain.TradeLine
}

type TradeUseCase interface {
	CreateTrade(ctx context.Context, input CreateTradeInput) (*TradeResult, error)
	GetTradeByID(ctx context.Context, id int64) (*TradeDetail, error)
}

type tradeUseCase struct {
	tradeRepo   domain.TradeRepository
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewTradeUseCase(tradeRepo domain.TradeRepository, productRepo domain.ProductRepository, logger *logrus.Logger) TradeUseCase {
	return &tradeUseCase{
		tradeRepo:   tradeRepo,
		productRepo: productRepo,
		log:         logger,
	}
}

func (uc *tradeUseCase) CreateTrade(ctx context.Context, input CreateTradeInput) (*TradeResult, error) {
	uc.log.Infof("Use Case: Trade registration started: emp_cd=%s, store_cd=%s, lines=%d",
		input.EmpCd, input.StoreCd, len(input.Lines))

	ids := make([]int64, 0, len(input.Lines))
	for _, line := range input.Lines {
		ids = append(ids, line.PrdID)
	}

	products, err := uc.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	missing := missingIDs(ids, products)
	if len(missing) > 0 {
		uc.log.Warnf("Use Case: Trade references unknown product ids: %v", missing)
		return nil, &UnknownProductsError{IDs: missing}
	}

	lines := make([]domain.TradeLine, 0, len(input.Lines))
	totalExTax, totalTax, totalAmt := 0, 0, 0
	for i, lineInput := range input.Lines {
		product := products[lineInput.PrdID]

		exTax, tax, total, err := calcLineAmounts(product.Price, lineInput.Qty, product.TaxCd)
		if err != nil {
			uc.log.Errorf("Use Case: Tax calculation failed for prd_id %d: %v", product.PrdID, err)
			return nil, fmt.Errorf("tax calculation failed: %w", err)
		}

		lines = append(lines, domain.TradeLine{
			DtlID:        i + 1,
			PrdID:        product.PrdID,
			PrdCode:      strconv.FormatInt(product.Code, 10),
			PrdName:      product.Name,
			PrdPrice:     product.Price,
			TaxCd:        product.TaxCd,
			Qty:          lineInput.Qty,
			LineAmtExTax: exTax,
			LineTax:      tax,
			LineAmt:      total,
		})

		totalExTax += exTax
		totalTax += tax
		totalAmt += total
	}

	trade := &domain.Trade{
		Datetime:    time.Now(),
		EmpCd:       input.EmpCd,
		StoreCd:     input.StoreCd,
		PosNo:       input.PosNo,
		TtlAmtExTax: totalExTax,
		TotalAmt:    totalAmt,
	}

	if err := uc.tradeRepo.CreateTrade(ctx, trade, lines); err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Trade registered: trd_id=%d, total_amt_ex_tax=%d, total_amt=%d",
		trade.TrdID, totalExTax, totalAmt)

	return &TradeResult{
		TradeID:       trade.TrdID,
		TotalAmtExTax: totalExTax,
		TotalAmt:      totalAmt,
		TotalTax:      totalTax,
	}, nil
}

func (uc *tradeUseCase) GetTradeByID(ctx context.Context, id int64) (*TradeDetail, error) {
	uc.log.Infof("Use Case: Trade retrieval started: trade_id=%d", id)

	trade, lines, err := uc.tradeRepo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Trade retrieved: trade_id=%d, lines=%d", id, len(lines))
	return &TradeDetail{Trade: *trade, Lines: lines}, nil
}

func missingIDs(requested []int64, found map[int64]domain.Product) []int64 {
	seen := map[int64]bool{}
	missing := []int64{}
	for _, id := range requested {
		if _, ok := found[id]; !ok && !seen[id] {
			missing = append(missing, id)
			seen[id] = true
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}
