package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/itg-platform/docverse/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	PostsLoaded *int   `json:"posts_loaded,omitempty"`
	LastSeed    string `json:"last_seed,omitempty"`
	File        string `json:"file,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		postCount := d.Store.PostCount()
		lastSeed := d.Store.LastSeed()
		lastSeedStr := "never"
		if !lastSeed.IsZero() {
			lastSeedStr = lastSeed.Format("2006-01-02 15:04:05")
		}

		redisStatus := checkRedis(d)

		components := map[string]componentStatus{
			"fixtures": {
				OK:          !lastSeed.IsZero(),
				PostsLoaded: &postCount,
				LastSeed:    lastSeedStr,
				File:        d.SeedFile,
			},
			"redis": redisStatus,
			"resolver": {
				OK:   true,
				Mode: "tree+rules",
			},
		}

		response := infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineServingMode(components map[string]componentStatus) string {
	if fixtures, exists := components["fixtures"]; exists && !fixtures.OK {
		return "critical" // Never seeded = critical
	}

	// Redis down is non-critical: only restart durability and the search
	// cache are lost.
	if rd, exists := components["redis"]; exists && !rd.OK {
		return "degraded"
	}

	return "full"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "no-restart-durability",
			Error:  "client not configured",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "no-restart-durability",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "mirror-enabled",
		Error:  "none",
	}
}
