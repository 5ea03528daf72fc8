package api

import (
	"net/http"

	"github.com/phrazzld/travel-guide/internal/platform/logger"
	"github.com/phrazzld/travel-guide/internal/web"
)

// PageHandler serves the browser pages.
type PageHandler struct {
	pages *web.Pages
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(pages *web.Pages) *PageHandler {
	return &PageHandler{pages: pages}
}

// Index handles GET / requests.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.IndexPage)
}

// Suggestions handles GET /suggestions requests.
func (h *PageHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.SuggestionsPage)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, page string) {
	if err := h.pages.Render(w, page); err != nil {
		logger.FromContext(r.Context()).Error("failed to render page", "page", page, "error", err)
	}
}
