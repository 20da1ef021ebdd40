package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/itg-platform/docverse/internal/httpserver/deps"
	"github.com/itg-platform/docverse/internal/httpserver/handlers"
	"github.com/itg-platform/docverse/internal/httpserver/mw"
)

func init() { Register(registerContent) }

func registerContent(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	sub.Get("/tags", handlers.Tags(d))
	sub.Get("/challenges", handlers.Challenges(d))
	sub.Get("/users/search", handlers.SearchUsers(d))
	sub.Get("/navigation/breadcrumb", handlers.Breadcrumb(d))
}
