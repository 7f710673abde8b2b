package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghannnnnnn/Resumex/internal/services"
)

type ResumeHandler struct {
	Resume *services.ResumeService
}

func NewResumeHandler(resume *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{Resume: resume}
}

// ExtractText is the POST /resume/extract endpoint. It takes a multipart
// upload under "file" and returns the extracted plain text the frontend
// feeds into the generation requests.
func (h *ResumeHandler) ExtractText(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}
	if fileHeader.Size > services.MaxResumeSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds the 5MB limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading file"})
		return
	}
	defer f.Close()

	data, err := services.ReadUpload(f)
	if err != nil {
		respondError(c, err)
		return
	}

	text, err := h.Resume.ExtractText(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text, "fileName": fileHeader.Filename})
}
