package handlers

import (
	"net/http"

	"github.com/agentstation/cyberui/internal/server/response"
)

// HandleListCategories handles GET /api/v1/categories.
// @Summary List categories
// @Description Category tree with component counts
// @Tags components
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/categories [get].
func (h *Handlers) HandleListCategories(w http.ResponseWriter, _ *http.Request) {
	cat, err := h.app.Catalog()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	categories := h.cache.Remember("categories", func() any {
		return cat.Categories()
	})

	response.OK(w, map[string]any{
		"categories": categories,
	})
}
