package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/TanakaTsuyoshi-10/step4backend/internal/domain"
	"github.com/TanakaTsuyoshi-10/step4backend/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// maxCodeDigits bounds the JAN/product code magnitude accepted on the path.
const maxCodeDigits = 25

var (
	errCodeInvalid = errors.New("product code must be a positive integer of at most 25 digits")
	// errCodeOverflow marks codes that pass the digit bound but exceed the
	// BIGINT column range; no stored row can match them.
	errCodeOverflow = errors.New("product code exceeds the storable range")
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:code", h.GetProductByCode)
	}
}

func (h *ProductHandler) GetProductByCode(c *gin.Context) {
	rawCode := c.Param("code")
	code, err := parseCode(rawCode)
	if err != nil {
		if errors.Is(err, errCodeOverflow) {
			// Valid by the digit bound, but the code column is a BIGINT, so
			// such a row cannot exist. Answer not-found with the code echoed.
			h.log.Warnf("Product code %s is beyond the storable range", rawCode)
			productNotFoundResponse(c, json.Number(rawCode))
			return
		}
		h.log.Warnf("Invalid product code parameter: %s", rawCode)
		validationErrorResponse(c, http.StatusUnprocessableEntity, errCodeInvalid.Error(), nil)
		return
	}

	product, err := h.useCase.GetProductByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			productNotFoundResponse(c, code)
			return
		}
		h.log.Errorf("Failed to get product by code %d: %v", code, err)
		databaseErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultListLimit))
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		h.log.Warnf("Invalid limit parameter '%s', using default %d", limitStr, usecase.DefaultListLimit)
		limit = usecase.DefaultListLimit
	}

	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		h.log.Warnf("Invalid offset parameter '%s', using default 0", offsetStr)
		offset = 0
	}

	products, err := h.useCase.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		databaseErrorResponse(c)
		return
	}

	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// parseCode validates the path parameter: digits only, between 1 and
// maxCodeDigits of them, value at least 1.
func parseCode(raw string) (int64, error) {
	if raw == "" || len(raw) > maxCodeDigits {
		return 0, errCodeInvalid
	}
	allZero := true
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			return 0, errCodeInvalid
		}
		if ch != '0' {
			allZero = false
		}
	}
	if allZero {
		return 0, errCodeInvalid
	}

	code, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errCodeOverflow
		}
		return 0, errCodeInvalid
	}
	return code, nil
}
