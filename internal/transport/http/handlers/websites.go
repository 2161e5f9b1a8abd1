package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-site-showcase/internal/errors"
	"github.com/pribylovaa/go-site-showcase/internal/models"
	"github.com/pribylovaa/go-site-showcase/internal/service"
)

// ListWebsites — GET /websites?sort=&category=&built_with=&limit=&page_token=.
func (h *Handlers) ListWebsites(w http.ResponseWriter, r *http.Request) {
	var in service.ListWebsitesInput

	q := r.URL.Query()
	in.Sort = models.Sort(q.Get("sort"))
	in.Category = q.Get("category")
	in.BuiltWith = q.Get("built_with")
	in.PageToken = q.Get("page_token")

	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		in.PageSize = int32(n)
	}

	page, err := h.Service.ListWebsites(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listFromModel(page))
}

// GetWebsiteByID — GET /websites/{id}.
func (h *Handlers) GetWebsiteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	site, err := h.Service.WebsiteByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GetWebsiteResponse{Website: websiteFromModel(site)})
}

// AdjacentWebsites — GET /websites/{id}/adjacent?sort=.
func (h *Handlers) AdjacentWebsites(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	adj, err := h.Service.AdjacentWebsites(r.Context(), id, models.Sort(r.URL.Query().Get("sort")))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AdjacentResponse{
		Prev: websiteFromModel(adj.Prev),
		Next: websiteFromModel(adj.Next),
	})
}

// IncrementViews — POST /websites/{id}/views.
// Телеметрия best-effort: ответ всегда 204, независимо от судьбы инкремента.
func (h *Handlers) IncrementViews(w http.ResponseWriter, r *http.Request) {
	h.Service.IncrementViews(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// CategoryCounts — GET /categories/counts.
func (h *Handlers) CategoryCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.CategoryCounts(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countsFromModel(counts))
}

// Sitemap — GET /websites/sitemap.
func (h *Handlers) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.SitemapEntries(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sitemapFromModel(entries))
}
