package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghannnnnnn/Resumex/internal/dtos"
	"github.com/meghannnnnnn/Resumex/internal/services"
)

// TextGenerator is the one thing this handler needs from the LLM layer.
// Kept as an interface so tests can script model responses.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GeminiHandler struct {
	LLM TextGenerator
}

// NewGeminiHandler creates the handler with dependencies.
func NewGeminiHandler(llm TextGenerator) *GeminiHandler {
	return &GeminiHandler{LLM: llm}
}

// Generate is the POST /gemini endpoint: build the prompt, call Gemini,
// normalize whatever came back.
func (h *GeminiHandler) Generate(c *gin.Context) {
	var req dtos.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	kind := services.GenerationKind(req.Type)
	prompt, err := services.BuildPrompt(kind, req.ResumeText, req.JobDescription)
	if err != nil {
		respondError(c, err)
		return
	}

	raw, err := h.LLM.Generate(c.Request.Context(), prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	outcome := services.Normalize(kind, raw)
	if !outcome.OK {
		// Still a 200: the caller gets the raw text and renders it as an
		// unparsed-response state instead of a hard failure.
		log.Printf("gemini: failed to parse model response, returning raw text (%d bytes)", len(outcome.Raw))
		c.JSON(http.StatusOK, gin.H{"result": gin.H{"raw": outcome.Raw}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": outcome.Items})
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
