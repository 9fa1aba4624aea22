package handlers

import (
	"net/http"

	"github.com/agentstation/cyberui/internal/server/response"
	"github.com/agentstation/cyberui/pkg/playground"
)

// PlaygroundRequest is the body of POST /playground/code.
type PlaygroundRequest struct {
	Selected []playground.Selected `json:"selected"`
}

// HandlePlaygroundCode handles POST /api/v1/playground/code.
// @Summary Generate playground code
// @Description Generate example page source for an ordered component selection
// @Tags playground
// @Accept json
// @Produce json
// @Param request body PlaygroundRequest true "Selected components"
// @Success 200 {object} response.Response{data=object}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/playground/code [post].
func (h *Handlers) HandlePlaygroundCode(w http.ResponseWriter, r *http.Request) {
	var req PlaygroundRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	cat, err := h.app.Catalog()
	if err != nil {
		response.InternalError(w, err)
		return
	}

	response.OK(w, map[string]any{
		"code": playground.GenerateCode(cat, req.Selected),
	})
}
