package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beacon/utils"
)

// HealthHandler serves the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
