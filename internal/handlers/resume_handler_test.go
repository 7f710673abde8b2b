package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghannnnnnn/Resumex/internal/services"
)

func newResumeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/resume/extract", NewResumeHandler(services.NewResumeService()).ExtractText)
	return r
}

func uploadResume(t *testing.T, r *gin.Engine, fileName, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume/extract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResumeExtractPlainText(t *testing.T) {
	w := uploadResume(t, newResumeRouter(), "resume.txt", "text/plain", []byte("Experienced backend engineer"))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Text     string `json:"text"`
		FileName string `json:"fileName"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Experienced backend engineer", body.Text)
	assert.Equal(t, "resume.txt", body.FileName)
}

func TestResumeExtractRejectsUnsupportedType(t *testing.T) {
	w := uploadResume(t, newResumeRouter(), "photo.png", "image/png", []byte{0x89, 0x50})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file type")
}

func TestResumeExtractRequiresFile(t *testing.T) {
	r := newResumeRouter()

	req := httptest.NewRequest(http.MethodPost, "/resume/extract", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file selected")
}
