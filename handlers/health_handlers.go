package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	resolverBackend string
}

func NewHealthHandler(resolverBackend string) *HealthHandler {
	return &HealthHandler{resolverBackend: resolverBackend}
}

// HealthCheckHandler godoc
// @Summary      Health Check
// @Description  Checks the health of the server and names the active resolver backend.
// @Tags         Monitoring
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "UP",
		"resolver": h.resolverBackend,
	})
}
