package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tradechat/internal/core/apperror"
	"tradechat/internal/domain/catalog"
	"tradechat/internal/infrastructure/http/v1/dto"
)

// VariablesHandler exposes the catalog as read-only JSON.
type VariablesHandler struct {
	*BaseHandler
	catalog *catalog.Catalog
}

// NewVariablesHandler creates a catalog handler.
func NewVariablesHandler(base *BaseHandler, cat *catalog.Catalog) *VariablesHandler {
	return &VariablesHandler{BaseHandler: base, catalog: cat}
}

// List returns all variables in catalog order.
// GET /api/v1/variables
func (h *VariablesHandler) List(c *gin.Context) {
	all := h.catalog.All()
	items := make([]dto.VariableResponse, 0, len(all))
	for _, v := range all {
		items = append(items, dto.FromVariable(v))
	}
	h.OK(c, dto.VariableListResponse{Items: items, TotalCount: len(items)})
}

// Search returns the variable the chat would pick for q.
// GET /api/v1/variables/search?q=
func (h *VariablesHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if !h.BindQuery(c, &req) {
		return
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	if query == "" {
		h.Error(c, apperror.NewValidation("query is required").WithDetail("field", "q"))
		return
	}

	v, ok := h.catalog.Search(query)
	if !ok {
		h.Error(c, apperror.NewNotFound("variable", req.Query))
		return
	}
	h.OK(c, dto.FromVariable(v))
}
