package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "tanaka-pos-api"
	serviceMessage = "Tanaka POS API"
	serviceVersion = "1.0.0"
)

// RegisterSystemRoutes wires the liveness endpoints. Both live outside the
// versioned API prefix and never touch the store.
func RegisterSystemRoutes(router gin.IRouter) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": serviceMessage,
			"version": serviceVersion,
		})
	})
}
