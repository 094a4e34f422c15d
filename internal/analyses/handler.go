package analyses

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lawassist-backend/internal/extract"
	"lawassist-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyze)
	rg.GET("/analyses", h.history)
	rg.GET("/analyses/:id", h.get)
	rg.GET("/analyses/:id/export/:format", h.export)
	rg.GET("/analyses/:id/original", h.original)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "uploaded file exceeds the size limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart field 'file' is required", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to open uploaded file", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read uploaded file", nil)
		return
	}

	report, err := h.Svc.Analyze(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, "unsupported_format", "only .txt, .docx and .pdf files are supported", nil)
		case errors.Is(err, extract.ErrCorruptDocument):
			respond.Error(c, http.StatusUnprocessableEntity, "corrupt_document", "the file could not be parsed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
		}
		return
	}

	c.Set("reportId", report.ID)
	c.Set("riskLevel", string(report.RiskLevel))
	respond.JSON(c, http.StatusCreated, report)
}

func (h *Handler) history(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	summaries, err := h.Svc.History(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.JSON(c, http.StatusOK, summaries)
}

func (h *Handler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	report, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load report", nil)
		return
	}

	c.Set("reportId", report.ID)
	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) export(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	format := strings.ToLower(strings.TrimSpace(c.Param("format")))

	body, contentType, err := h.Svc.Export(c.Request.Context(), id, format)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		case errors.Is(err, ErrUnsupportedExportFormat):
			respond.Error(c, http.StatusBadRequest, "unsupported_export_format", "format must be json or html", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export report", nil)
		}
		return
	}

	c.Set("reportId", id)
	c.Data(http.StatusOK, contentType, body)
}

func (h *Handler) original(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	rc, err := h.Svc.OpenOriginal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "original file not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open original file", nil)
		return
	}
	defer rc.Close()

	c.Set("reportId", id)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		// Headers already sent, nothing more to do than log via middleware.
		return
	}
}
