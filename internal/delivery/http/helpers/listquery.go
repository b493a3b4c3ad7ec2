package helpers

import (
	"net/http"
	"strings"

	"eventcollective/internal/domain"
)

// ParseListOptions reads the search and ordering query parameters and resolves
// them against the endpoint's list configuration. Unknown ordering fields fall
// back to the config default rather than erroring, so stale client links keep
// working.
func ParseListOptions(r *http.Request, cfg domain.ListConfig) domain.ListOptions {
	q := r.URL.Query()
	search := strings.TrimSpace(q.Get("search"))
	ordering := strings.TrimSpace(q.Get("ordering"))
	return cfg.Resolve(search, ordering)
}
