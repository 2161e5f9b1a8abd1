package handlers

import (
	"time"

	"github.com/pribylovaa/go-site-showcase/internal/models"
)

// Website — JSON-представление записи каталога для фронта.
// Временные поля сериализуются строками RFC3339 UTC.
type Website struct {
	ID           string            `json:"id"` // Mongo ObjectID
	Name         string            `json:"name"`
	VideoURL     string            `json:"video_url"`
	URL          string            `json:"url"`
	BuiltWith    []string          `json:"built_with"`
	Categories   []string          `json:"categories"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
	UploadedAt   string            `json:"uploaded_at"`
	LastViewedAt string            `json:"last_viewed_at,omitempty"`
	Views        int64             `json:"views"`
}

type ListWebsitesResponse struct {
	Websites      []Website `json:"websites"`
	NextPageToken string    `json:"next_page_token"`
	HasMore       bool      `json:"has_more"`
}

type GetWebsiteResponse struct {
	Website *Website `json:"website"`
}

// AdjacentResponse — соседи записи в окне выдачи; отсутствующий сосед — null.
type AdjacentResponse struct {
	Prev *Website `json:"prev"`
	Next *Website `json:"next"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CategoryCountsResponse struct {
	Categories []CategoryCount `json:"categories"`
}

type SitemapEntry struct {
	ID        string `json:"id"`
	UpdatedAt string `json:"updated_at"`
}

type SitemapResponse struct {
	Entries []SitemapEntry `json:"entries"`
}

func websiteFromModel(m *models.Website) *Website {
	if m == nil {
		return nil
	}

	out := &Website{
		ID:          m.ID,
		Name:        m.Name,
		VideoURL:    m.VideoURL,
		URL:         m.URL,
		BuiltWith:   m.BuiltWith,
		Categories:  m.Categories,
		SocialLinks: m.SocialLinks,
		UploadedAt:  m.UploadedAt.UTC().Format(time.RFC3339),
		Views:       m.Views,
	}

	if !m.LastViewedAt.IsZero() {
		out.LastViewedAt = m.LastViewedAt.UTC().Format(time.RFC3339)
	}

	return out
}

func listFromModel(p *models.Page) ListWebsitesResponse {
	out := ListWebsitesResponse{
		Websites:      make([]Website, 0, len(p.Items)),
		NextPageToken: p.NextPageToken,
		HasMore:       p.HasMore,
	}

	for i := range p.Items {
		out.Websites = append(out.Websites, *websiteFromModel(&p.Items[i]))
	}

	return out
}

func countsFromModel(counts []models.CategoryCount) CategoryCountsResponse {
	out := CategoryCountsResponse{Categories: make([]CategoryCount, 0, len(counts))}
	for _, c := range counts {
		out.Categories = append(out.Categories, CategoryCount{Name: c.Name, Count: c.Count})
	}

	return out
}

func sitemapFromModel(entries []models.SitemapEntry) SitemapResponse {
	out := SitemapResponse{Entries: make([]SitemapEntry, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, SitemapEntry{
			ID:        e.ID,
			UpdatedAt: e.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	return out
}
