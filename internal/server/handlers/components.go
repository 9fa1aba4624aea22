package handlers

import (
	"net/http"

	"github.com/agentstation/cyberui/internal/server/cache"
	"github.com/agentstation/cyberui/internal/server/filter"
	"github.com/agentstation/cyberui/internal/server/response"
	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/errors"
	"github.com/agentstation/cyberui/pkg/logging"
)

// ComponentDetail is the body of GET /components/{id}.
type ComponentDetail struct {
	Component catalogs.Component  `json:"component"`
	Prev      *catalogs.Component `json:"prev"`
	Next      *catalogs.Component `json:"next"`
}

// HandleListComponents handles GET /api/v1/components.
// @Summary List components
// @Description List components filtered by category or subcategory and a free-text search
// @Tags components
// @Produce json
// @Param category query string false "Category or subcategory slug (default: all)"
// @Param search query string false "Case-insensitive match on name or description"
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/components [get].
func (h *Handlers) HandleListComponents(w http.ResponseWriter, r *http.Request) {
	cat, err := h.app.Catalog()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	f := filter.ParseComponentFilter(r)
	components := h.cache.Remember(f.CacheKey(), func() any {
		return f.Apply(cat)
	}).([]catalogs.Component)

	response.OK(w, map[string]any{
		"components": components,
		"count":      len(components),
		"category":   f.Category,
		"search":     f.Search,
	})
}

// HandleGetComponent handles GET /api/v1/components/{id}.
// @Summary Get component by ID
// @Description Retrieve a component with its previous and next neighbors
// @Tags components
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} response.Response{data=ComponentDetail}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/components/{id} [get].
func (h *Handlers) HandleGetComponent(w http.ResponseWriter, r *http.Request, id string) {
	key := cache.Key("component", id)
	if cached, found := h.cache.Get(key); found {
		response.OK(w, cached)
		return
	}

	cat, err := h.app.Catalog()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	ctx := logging.WithComponent(logging.WithLogger(r.Context(), h.logger), id)

	component, ok := cat.Component(id)
	if !ok {
		logging.FromContext(ctx).Debug().Msg("Component not found")
		response.ErrorFromType(w, errors.NewNotFoundError("component", id))
		return
	}

	prev, next := cat.Neighbors(id)
	detail := ComponentDetail{Component: component, Prev: prev, Next: next}
	h.cache.Set(key, detail)

	response.OK(w, detail)
}
