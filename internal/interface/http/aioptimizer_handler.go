package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/prompt-optimizer/internal/domain/aioptimizer"
)

// AIHealth reports whether the language models are available.
func (h *Handler) AIHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.optimizer.Health())
}

// AIOptimize summarizes a prompt and compresses it to keywords.
func (h *Handler) AIOptimize(c *gin.Context) {
	req, ok := h.bindAIRequest(c)
	if !ok {
		return
	}
	resp, err := h.optimizer.Optimize(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "optimize_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AISummarize summarizes a prompt.
func (h *Handler) AISummarize(c *gin.Context) {
	req, ok := h.bindAIRequest(c)
	if !ok {
		return
	}
	resp, err := h.optimizer.Summarize(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "summarize_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AIKeywords extracts the most relevant keyphrases of a prompt.
func (h *Handler) AIKeywords(c *gin.Context) {
	req, ok := h.bindAIRequest(c)
	if !ok {
		return
	}
	resp, err := h.optimizer.ExtractKeywords(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "keywords_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) bindAIRequest(c *gin.Context) (aioptimizer.Request, bool) {
	var req aioptimizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return aioptimizer.Request{}, false
	}
	return req, true
}
