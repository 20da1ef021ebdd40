package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/itg-platform/docverse/internal/httpserver/deps"
	"github.com/itg-platform/docverse/internal/httpserver/handlers"
	"github.com/itg-platform/docverse/internal/httpserver/mw"
)

func init() { Register(registerPosts) }

func registerPosts(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Route("/posts", func(r chi.Router) {
		r.Get("/", handlers.Posts(d))
		r.Post("/", handlers.CreatePost(d))
		r.Get("/{id}", handlers.PostByID(d))
		r.Delete("/{id}", handlers.DeletePost(d))
		r.Post("/{id}/reactions", handlers.ToggleReaction(d))
		r.Post("/{id}/favorite", handlers.ToggleFavorite(d))
		r.Get("/{id}/analytics", handlers.PostAnalytics(d))
	})
}
