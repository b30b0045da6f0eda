package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/TanakaTsuyoshi-10/step4backend/internal/domain"
	"github.com/TanakaTsuyoshi-10/step4backend/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type createTradeLineRequest struct {
	PrdID int64 `json:"prd_id" binding:"required,gt=0"`
	Qty   int   `json:"qty"    binding:"required,gt=0"`
}

type createTradeRequest struct {
	EmpCd      string                   `json:"emp_cd"      binding:"required,max=10"`
	StoreCd    string                   `json:"store_cd"    binding:"required,max=5"`
	PosNo      string                   `json:"pos_no"      binding:"required,max=3"`
	TradeLines []createTradeLineRequest `json:"trade_lines" binding:"required,min=1,dive"`
}

type TradeHandler struct {
	useCase usecase.TradeUseCase
	log     *logrus.Logger
}

func NewTradeHandler(uc usecase.TradeUseCase, logger *logrus.Logger) *TradeHandler {
	return &TradeHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *TradeHandler) RegisterRoutes(router gin.IRouter) {
	trades := router.Group("/trades")
	{
		trades.POST("", h.CreateTrade)
		trades.GET("/:id", h.GetTradeByID)
	}
}

func (h *TradeHandler) CreateTrade(c *gin.Context) {
	var req createTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create trade: %v", err)
		validationErrorResponse(c, http.StatusBadRequest, "Invalid trade payload: "+err.Error(), nil)
		return
	}

	input := usecase.CreateTradeInput{
		EmpCd:   req.EmpCd,
		StoreCd: req.StoreCd,
		PosNo:   req.PosNo,
	}
	for _, line := range req.TradeLines {
		input.Lines = append(input.Lines, usecase.CreateTradeLineInput{
			PrdID: line.PrdID,
			Qty:   line.Qty,
		})
	}

	result, err := h.useCase.CreateTrade(c.Request.Context(), input)
	if err != nil {
		var unknown *usecase.UnknownProductsError
		switch {
		case errors.As(err, &unknown):
			validationErrorResponse(c, http.StatusBadRequest,
				"The trade references unregistered product ids",
				[]gin.H{{"field": "prd_id", "missing_ids": unknown.IDs}})
		case errors.Is(err, domain.ErrIntegrityViolation):
			integrityErrorResponse(c)
		default:
			h.log.Errorf("Failed to create trade: %v", err)
			databaseErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"trade_id":         result.TradeID,
		"total_amt_ex_tax": result.TotalAmtExTax,
		"total_amt":        result.TotalAmt,
		"total_tax":        result.TotalTax,
		"message":          "Trade registered successfully",
	})
}

func (h *TradeHandler) GetTradeByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid trade ID parameter: %s", idStr)
		validationErrorResponse(c, http.StatusUnprocessableEntity, "Trade ID must be a positive integer", nil)
		return
	}

	detail, err := h.useCase.GetTradeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTradeNotFound) {
			tradeNotFoundResponse(c, id)
			return
		}
		h.log.Errorf("Failed to get trade by ID %d: %v", id, err)
		databaseErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trade":       detail.Trade,
		"trade_lines": detail.Lines,
	})
}
