package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-parser-api/internal/config"
	"cv-parser-api/internal/llm"
)

func newTestDeps(t *testing.T) (*config.Config, *llm.Manager) {
	t.Helper()
	t.Setenv("LLM_API_KEY", "")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	require.True(t, cfg.IsDemoMode())

	manager := llm.NewManager(cfg)
	require.NoError(t, manager.Start())
	return cfg, manager
}

// buildUpload assembles a multipart body with a single "file" field carrying
// the given declared content type
func buildUpload(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func doParseRequest(t *testing.T, cfg *config.Config, manager *llm.Manager, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/parse-cv", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ParseCVHandler(cfg, manager)(c))
	return rec
}

func TestParseCVRejectsNonPDFContentType(t *testing.T) {
	cfg, manager := newTestDeps(t)

	body, contentType := buildUpload(t, "resume.txt", "text/plain", []byte("plain text resume"))
	rec := doParseRequest(t, cfg, manager, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Only PDF files are supported.", resp["message"])
}

func TestParseCVRejectsMissingFile(t *testing.T) {
	cfg, manager := newTestDeps(t)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.Close())

	rec := doParseRequest(t, cfg, manager, body, writer.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseCVDemoModeReturnsCannedStructure(t *testing.T) {
	cfg, manager := newTestDeps(t)

	pdfData, err := os.ReadFile("testdata/hello.pdf")
	require.NoError(t, err)

	body, contentType := buildUpload(t, "resume.pdf", "application/pdf", pdfData)
	rec := doParseRequest(t, cfg, manager, body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)

	// demo mode serves the fixed structure regardless of the PDF's content
	var cv map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cv))
	assert.Equal(t, "John Doe", cv["name"])

	contact, ok := cv["contact"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "john.doe@example.com", contact["email"])
}

func TestParseCVCorruptedPDFReturnsProcessingFailure(t *testing.T) {
	cfg, manager := newTestDeps(t)

	body, contentType := buildUpload(t, "resume.pdf", "application/pdf", []byte("not a pdf at all"))
	rec := doParseRequest(t, cfg, manager, body, contentType)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	message, _ := resp["message"].(string)
	assert.Contains(t, message, "Failed to process CV:")
	assert.Contains(t, message, "Please ensure the PDF is valid and not corrupted.")
}
