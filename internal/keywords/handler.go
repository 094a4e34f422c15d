package keywords

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lawassist-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches keyword routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/keywords", h.list)
	rg.POST("/keywords", h.add)
	rg.DELETE("/keywords/:id", h.delete)
}

type addKeywordRequest struct {
	Phrase string `json:"phrase"`
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list keywords", nil)
		return
	}
	respond.JSON(c, http.StatusOK, all)
}

func (h *Handler) add(c *gin.Context) {
	var req addKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	kw, err := h.Svc.Add(c.Request.Context(), req.Phrase)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyKeyword):
			respond.Error(c, http.StatusBadRequest, "empty_keyword", "phrase must be non-empty", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to add keyword", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, kw)
}

func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "keyword id is required", nil)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "keyword_not_found", "keyword not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete keyword", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"deleted": id})
}
