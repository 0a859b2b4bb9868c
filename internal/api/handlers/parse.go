package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cv-parser-api/internal/config"
	"cv-parser-api/internal/extractor"
	"cv-parser-api/internal/llm"
	"cv-parser-api/internal/logging"
	"cv-parser-api/pkg/models"
	"cv-parser-api/pkg/utils"
)

const pdfContentType = "application/pdf"

// ParseCVHandler handles the POST /parse-cv endpoint. The uploaded PDF is
// read fully into memory, its text extracted, and the text handed to the
// completion service. The structured mapping comes back as the entire
// response body with no envelope.
func ParseCVHandler(cfg *config.Config, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := requestIDFromContext(c)
		logger := logging.LogWithRequestID(requestID)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			logger.Error("No file field in upload", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "A CV file upload is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		contentType := fileHeader.Header.Get(echo.HeaderContentType)
		if contentType != pdfContentType {
			logger.Warn("Rejected upload with unsupported content type", map[string]interface{}{
				"content_type": contentType,
				"filename":     fileHeader.Filename,
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_input",
				Message:   "Only PDF files are supported.",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		src, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", map[string]interface{}{"error": err.Error()})
			return processingFailure(c, requestID, err)
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			logger.Error("Failed to read uploaded file", map[string]interface{}{"error": err.Error()})
			return processingFailure(c, requestID, err)
		}

		cvText, err := extractor.ExtractText(data)
		if err != nil {
			logger.Error("PDF text extraction failed", map[string]interface{}{
				"stage":    "extraction",
				"filename": fileHeader.Filename,
				"error":    err.Error(),
			})
			return processingFailure(c, requestID, err)
		}

		structuredCV, err := llmManager.StructureCV(c.Request().Context(), cvText)
		if err != nil {
			logger.Error("CV structuring failed", map[string]interface{}{
				"stage":       "structuring",
				"text_length": len(cvText),
				"error":       err.Error(),
			})
			return processingFailure(c, requestID, err)
		}

		logger.Info("CV parsed successfully", map[string]interface{}{
			"filename":        fileHeader.Filename,
			"pdf_bytes":       len(data),
			"text_length":     len(cvText),
			"provider":        llmManager.GetProviderName(),
			"processing_time": utils.FormatDuration(time.Since(startTime)),
		})

		return c.JSON(http.StatusOK, structuredCV)
	}
}

// processingFailure translates extraction and structuring errors into the
// user-facing failure response, keeping the original message
func processingFailure(c echo.Context, requestID string, err error) error {
	return c.JSON(utils.StatusCode(err), models.ErrorResponse{
		Error:     "processing_failed",
		Message:   fmt.Sprintf("Failed to process CV: %v. Please ensure the PDF is valid and not corrupted.", err),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

func requestIDFromContext(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
