package handlers

import (
	"net/http"

	"github.com/agentstation/cyberui/internal/server/response"
	"github.com/agentstation/cyberui/pkg/preview"
)

// ButtonPreviewRequest is the body of POST /preview/button. Both fields are
// loosely typed: a variant that is not a string or props that are not an
// object fall back to defaults instead of failing the request.
type ButtonPreviewRequest struct {
	Variant any `json:"variant"`
	Props   any `json:"props"`
}

// HandlePreviewButton handles POST /api/v1/preview/button.
// @Summary Resolve button preview props
// @Tags preview
// @Accept json
// @Produce json
// @Param request body ButtonPreviewRequest true "Variant and custom props"
// @Success 200 {object} response.Response{data=preview.ButtonProps}
// @Failure 400 {object} response.Response{error=response.Error}
// @Router /api/v1/preview/button [post].
func (h *Handlers) HandlePreviewButton(w http.ResponseWriter, r *http.Request) {
	var req ButtonPreviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	variant, _ := req.Variant.(string)
	props, _ := req.Props.(map[string]any)
	response.OK(w, preview.ResolveButtonProps(variant, props))
}
