package handlers

import (
	"net/http"

	"github.com/itg-platform/docverse/internal/gateway"
	"github.com/itg-platform/docverse/internal/httpserver/deps"
)

// Breadcrumb resolves a URL path to its breadcrumb pair. Resolution is
// total, so this always answers success.
func Breadcrumb(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		writeEnvelope(w, gateway.OK(d.Resolver.Resolve(path)))
	}
}
