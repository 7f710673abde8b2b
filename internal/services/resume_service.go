package services

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxResumeSize caps uploads at 5MB.
const MaxResumeSize = 5 * 1024 * 1024

// ResumeService extracts plain text from an uploaded resume so the rest of
// the pipeline only ever deals with strings.
type ResumeService struct{}

func NewResumeService() *ResumeService {
	return &ResumeService{}
}

// ExtractText pulls the text out of a resume upload. Supported formats are
// plain text, PDF and DOCX, picked by content type with the file extension
// as a tiebreaker for the generic octet-stream uploads browsers send.
func (s *ResumeService) ExtractText(fileName, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", invalidRequest("Uploaded file is empty")
	}
	if len(data) > MaxResumeSize {
		return "", invalidRequest("File size exceeds the 5MB limit")
	}

	switch resolveKind(fileName, contentType) {
	case "txt":
		return string(data), nil
	case "pdf":
		return extractPDFText(data)
	case "docx":
		return extractDocxText(data)
	default:
		return "", invalidRequest("Invalid file type. Allowed types: application/pdf, text/plain, docx")
	}
}

func resolveKind(fileName, contentType string) string {
	switch contentType {
	case "text/plain":
		return "txt"
	case "application/pdf":
		return "pdf"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx"
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		return "txt"
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	}
	return ""
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", invalidRequest("Failed to extract text from file")
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, _ := page.GetPlainText(nil)
		text.WriteString(content)
	}
	return text.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", invalidRequest("Failed to extract text from file")
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// ReadUpload drains an upload stream while enforcing the size cap, so a
// handler never buffers more than MaxResumeSize+1 bytes.
func ReadUpload(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxResumeSize+1))
	if err != nil {
		return nil, invalidRequest("Error reading file")
	}
	return data, nil
}
