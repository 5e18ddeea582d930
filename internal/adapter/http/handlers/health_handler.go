package handlers

import (
	"net/http"

	response "checkout_gateway/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	body response.HealthResponse
}

// NewHealthHandler snapshots the values /health reports; nothing is looked up per request.
func NewHealthHandler(environment string, allowedOrigins []string, corsOrigins string) *HealthHandler {
	return &HealthHandler{body: response.HealthResponse{
		Status:         "ok",
		Environment:    environment,
		AllowedOrigins: append([]string{}, allowedOrigins...),
		CORSOrigins:    corsOrigins,
	}}
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	response.HealthResponse
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.body)
}
