package handlers

import (
	"net/http"

	"github.com/itg-platform/docverse/internal/gateway"
	"github.com/itg-platform/docverse/internal/httpserver/deps"
)

// Tags serves all tags.
func Tags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, d.Gateway.GetTags(r.Context()))
	}
}

// Challenges serves the challenge listing filtered by the client's
// difficulty/status/search selection.
func Challenges(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := gateway.ChallengeQuery{
			Difficulty: r.URL.Query().Get("difficulty"),
			Status:     r.URL.Query().Get("status"),
			Search:     r.URL.Query().Get("q"),
		}
		writeEnvelope(w, d.Gateway.GetChallenges(r.Context(), q))
	}
}

// SearchUsers serves ranked user search.
func SearchUsers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")
		writeEnvelope(w, d.Gateway.SearchUsers(r.Context(), term))
	}
}
