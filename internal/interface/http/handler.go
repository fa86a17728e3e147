package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/prompt-optimizer/internal/domain/aioptimizer"
	"github.com/yanqian/prompt-optimizer/internal/domain/energy"
	"github.com/yanqian/prompt-optimizer/internal/domain/report"
	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
)

const welcomeMessage = "welcome to prompt optimizer backend"

// Handler wires the HTTP transport to domain services.
type Handler struct {
	reports   report.Builder
	estimator energy.Estimator
	spelling  spelling.Service
	optimizer aioptimizer.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(reports report.Builder, estimator energy.Estimator, spellSvc spelling.Service, optimizer aioptimizer.Service, logger *slog.Logger) *Handler {
	return &Handler{
		reports:   reports,
		estimator: estimator,
		spelling:  spellSvc,
		optimizer: optimizer,
		logger:    logger.With("component", "http.handler"),
	}
}

type promptRequest struct {
	Text      string `json:"text" binding:"required,max=10000"`
	ModelName string `json:"model_name" binding:"max=128"`
}

// Root returns the welcome message.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Optimize reduces a prompt and reports the energy and carbon of each variant.
func (h *Handler) Optimize(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	rep, err := h.reports.Build(c.Request.Context(), req.Text, req.ModelName)
	if err != nil {
		abortWithError(c, fromDomainError(err, "optimize_failed"))
		return
	}

	c.JSON(http.StatusOK, rep)
}

// Energy estimates the tokens, energy and carbon of a single text.
func (h *Handler) Energy(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, h.estimator.Estimate(req.Text, req.ModelName).Rounded())
}
