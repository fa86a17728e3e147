package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
)

type spellCheckRequest struct {
	Text string `json:"text" binding:"required"`
}

type batchSpellCheckRequest struct {
	Texts []string `json:"texts" binding:"required,min=1"`
}

type dictionaryRequest struct {
	Words []string `json:"words" binding:"required,min=1,max=1000"`
}

// SpellCheck checks a single text. Service level failures keep the
// structured status:"error" body.
func (h *Handler) SpellCheck(c *gin.Context) {
	var req spellCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, h.spelling.Check(c.Request.Context(), req.Text))
}

// BatchSpellCheck checks several texts and aggregates the results.
func (h *Handler) BatchSpellCheck(c *gin.Context) {
	var req batchSpellCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp := h.spelling.BatchCheck(c.Request.Context(), req.Texts)
	if resp.Status == spelling.StatusError && c.Request.Context().Err() == nil {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Suggestions returns corrections for one word.
func (h *Handler) Suggestions(c *gin.Context) {
	word := strings.TrimSpace(c.Query("word"))
	if word == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "word query parameter is required", nil))
		return
	}

	suggestions := h.spelling.Suggestions(c.Request.Context(), word)
	c.JSON(http.StatusOK, gin.H{"word": strings.ToLower(word), "suggestions": suggestions})
}

// AddDictionaryWords persists custom words and teaches them to the dictionary.
func (h *Handler) AddDictionaryWords(c *gin.Context) {
	var req dictionaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	added, err := h.spelling.AddWords(c.Request.Context(), req.Words)
	if err != nil {
		abortWithError(c, fromDomainError(err, "dictionary_error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}
