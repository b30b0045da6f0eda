package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error bodies mirror the documented response schemas: an error kind, a
// human readable message and optional context. Internal error text never
// reaches the client.

func productNotFoundResponse(c *gin.Context, code interface{}) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":   "Product not found",
		"message": "The specified product code is not registered",
		"code":    code,
	})
}

func tradeNotFoundResponse(c *gin.Context, tradeID int64) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":    "Trade not found",
		"message":  "The specified trade ID is not registered",
		"trade_id": tradeID,
	})
}

func validationErrorResponse(c *gin.Context, status int, message string, details interface{}) {
	body := gin.H{
		"error":   "Validation Error",
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

func integrityErrorResponse(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Integrity Error",
		"message": "A data integrity error occurred",
	})
}

func databaseErrorResponse(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Database Error",
		"message": "An error occurred during database processing",
	})
}

func internalErrorResponse(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred",
	})
}
