package gateway

import (
	"context"

	"github.com/itg-platform/docverse/internal/domain"
)

// ChallengeQuery carries the client-side filter state for challenge
// listings. Zero values mean "no constraint" like the UI sentinel.
type ChallengeQuery struct {
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
	Search     string `json:"search"`
}

func (q ChallengeQuery) filterState() domain.FilterState {
	state := domain.DefaultFilterState()
	if q.Difficulty != "" {
		state.Difficulty = q.Difficulty
	}
	if q.Status != "" {
		state.Status = q.Status
	}
	state.Search = q.Search
	return state
}

// GetTags returns all tags in seed order.
func (g *Gateway) GetTags(ctx context.Context) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}
	return OK(g.store.Tags())
}

// GetChallenges returns challenges passed through the staged filter.
func (g *Gateway) GetChallenges(ctx context.Context, q ChallengeQuery) Envelope {
	if env, ok := g.simulate(ctx); !ok {
		return env
	}
	state := q.filterState()
	if state.Neutral() {
		return OK(g.store.Challenges())
	}
	return OK(domain.FilterItems(g.store.Challenges(), state))
}
