package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
	"github.com/attendly/attendly-backend-go/internal/tools"
	"github.com/go-chi/chi/v5"
)

type ToolHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Invoke(w http.ResponseWriter, r *http.Request)
}

type toolHandlerImpl struct {
	registry *tools.Registry
}

func NewToolHandler(registry *tools.Registry) ToolHandler {
	return &toolHandlerImpl{
		registry: registry,
	}
}

// List implements ToolHandler.
func (h *toolHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.registry.List())
}

type invokeToolRequest struct {
	// Input is the raw composite argument string, passed through to the
	// tool unparsed.
	Input string `json:"input"`
}

// Invoke implements ToolHandler. The tool renders its own failures into
// the result text, so only an unknown tool name is an HTTP-level error.
func (h *toolHandlerImpl) Invoke(w http.ResponseWriter, r *http.Request) {
	var req invokeToolRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode tool invocation request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.registry.Invoke(r.Context(), chi.URLParam(r, "name"), req.Input)
	if err != nil {
		if errors.Is(err, tools.ErrUnknownTool) {
			response.NotFound(w, "Unknown tool")
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
