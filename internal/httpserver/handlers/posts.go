package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/itg-platform/docverse/internal/gateway"
	"github.com/itg-platform/docverse/internal/httpserver/deps"
)

// Posts serves the feed listing. Query params: tag, limit, offset.
func Posts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := gateway.PostQuery{
			Tag:    r.URL.Query().Get("tag"),
			Limit:  intParam(r, "limit"),
			Offset: intParam(r, "offset"),
		}
		writeEnvelope(w, d.Gateway.GetPosts(r.Context(), q))
	}
}

// PostByID serves a single post.
func PostByID(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		writeEnvelope(w, d.Gateway.GetPost(r.Context(), id))
	}
}

// CreatePost creates a post from a JSON body.
func CreatePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.CreatePostInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		writeEnvelope(w, d.Gateway.CreatePost(r.Context(), in))
	}
}

// DeletePost soft-deletes a post.
func DeletePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		writeEnvelope(w, d.Gateway.DeletePost(r.Context(), id))
	}
}

// ToggleReaction flips a reaction on a post.
func ToggleReaction(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.ReactionInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		in.PostID = chi.URLParam(r, "id")
		writeEnvelope(w, d.Gateway.ToggleReaction(r.Context(), in))
	}
}

// ToggleFavorite flips a favorite on a post.
func ToggleFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.FavoriteInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeBadRequest(w, "invalid request body")
			return
		}
		in.PostID = chi.URLParam(r, "id")
		writeEnvelope(w, d.Gateway.ToggleFavorite(r.Context(), in))
	}
}

// PostAnalytics serves the engagement view for a post.
func PostAnalytics(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		writeEnvelope(w, d.Gateway.GetPostAnalytics(r.Context(), id))
	}
}

func intParam(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
