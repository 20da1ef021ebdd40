package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/itg-platform/docverse/internal/domain"
	"github.com/itg-platform/docverse/internal/gateway"
	"github.com/itg-platform/docverse/internal/httpserver/deps"
	"github.com/itg-platform/docverse/internal/httpserver/routes"
	"github.com/itg-platform/docverse/internal/logger"
	"github.com/itg-platform/docverse/internal/store/memory"
)

// envelope mirrors the wire shape of gateway responses for decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

func newTestServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	store.ReplaceTags([]*domain.Tag{{ID: "go", Name: "Go", Color: "#00ADD8"}})
	store.ReplaceUsers([]*domain.User{
		{ID: "u1", Username: "jane", DisplayName: "Jane Doe"},
		{ID: "u2", Username: "janet", DisplayName: "Janet Smith"},
	})
	store.ReplaceChallenges([]*domain.Challenge{
		{ID: "c1", Title: "Build a REST API", Difficulty: "easy", IsActive: true},
		{ID: "c2", Title: "Concurrent crawler", Difficulty: "hard", IsActive: false},
	})
	store.ReplaceFixturePosts([]*domain.Post{
		{
			ID:      "p1",
			Title:   "Welcome to the platform",
			Content: "first seeded post",
			Tags:    []domain.Tag{{ID: "go", Name: "Go"}},
			Sources: []string{domain.SourceFixtures},
		},
	})

	log := logger.New("error", false)
	gw := gateway.New(gateway.Options{
		Store:  store,
		Logger: log,
		Delay:  gateway.NoDelay{},
	})

	d := deps.Deps{
		Logger:        log,
		StartTime:     time.Now(),
		Gateway:       gw,
		Store:         store,
		Resolver:      domain.NewResolver(domain.DefaultNavigation(), "", domain.Breadcrumb{}),
		ReloadTrigger: make(chan struct{}, 1),
	}

	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		routes.RegisterAll(api, d)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func getEnvelope(t *testing.T, srv *httptest.Server, path string) envelope {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s status = %d, want 200", path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("GET %s: failed to decode envelope: %v", path, err)
	}
	return env
}

func postEnvelope(t *testing.T, srv *httptest.Server, path string, body any) envelope {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("POST %s: failed to decode envelope: %v", path, err)
	}
	return env
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/healthz")
	if err != nil {
		t.Fatalf("GET /api/healthz failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode healthz: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("healthz status field = %q, want ok", body.Status)
	}
}

func TestReadyzReflectsSeedState(t *testing.T) {
	srv, _ := newTestServer(t)

	// The test store was seeded through ReplaceFixturePosts, so the
	// service reports ready.
	resp, err := http.Get(srv.URL + "/api/readyz")
	if err != nil {
		t.Fatalf("GET /api/readyz failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("readyz status = %d, want 200", resp.StatusCode)
	}
}

func TestListPosts(t *testing.T) {
	srv, _ := newTestServer(t)

	env := getEnvelope(t, srv, "/api/posts")
	if !env.Success {
		t.Fatalf("posts listing failed: %s", env.Error)
	}

	var posts []domain.Post
	if err := json.Unmarshal(env.Data, &posts); err != nil {
		t.Fatalf("failed to decode posts: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "p1" {
		t.Errorf("posts = %d entries, want the seeded post", len(posts))
	}
}

func TestCreatePostFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	env := postEnvelope(t, srv, "/api/posts", gateway.CreatePostInput{
		Title:    "Fresh post",
		Content:  "body",
		AuthorID: "u1",
		TagIDs:   []string{"go"},
	})
	if !env.Success {
		t.Fatalf("create failed: %s", env.Error)
	}

	var created domain.Post
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("failed to decode created post: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created post has no id")
	}

	// The new post leads the feed and appears exactly once.
	env = getEnvelope(t, srv, "/api/posts")
	var posts []domain.Post
	if err := json.Unmarshal(env.Data, &posts); err != nil {
		t.Fatalf("failed to decode posts: %v", err)
	}
	seen := 0
	for _, p := range posts {
		if p.ID == created.ID {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("created post appears %d times, want exactly once", seen)
	}
	if posts[0].ID != created.ID {
		t.Errorf("feed head = %s, want the new post", posts[0].ID)
	}
}

func TestCreatePostValidationStaysEnvelopeShaped(t *testing.T) {
	srv, _ := newTestServer(t)

	env := postEnvelope(t, srv, "/api/posts", gateway.CreatePostInput{Content: "no title"})
	if env.Success {
		t.Error("create without title should fail in the envelope")
	}
	if env.Error == "" {
		t.Error("failure envelope should carry an error message")
	}
}

func TestPostNotFoundIsEnvelopeFailure(t *testing.T) {
	srv, _ := newTestServer(t)

	env := getEnvelope(t, srv, "/api/posts/does-not-exist")
	if env.Success {
		t.Error("unknown post should fail in the envelope, not with a 404")
	}
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)

	env := postEnvelope(t, srv, "/api/posts/p1/favorite", gateway.FavoriteInput{UserID: "u1"})
	if !env.Success {
		t.Fatalf("favorite failed: %s", env.Error)
	}
	var res gateway.ToggleResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("failed to decode toggle result: %v", err)
	}
	if !res.Active || res.Count != 1 {
		t.Errorf("first toggle = %+v, want active with count 1", res)
	}

	env = postEnvelope(t, srv, "/api/posts/p1/favorite", gateway.FavoriteInput{UserID: "u1"})
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("failed to decode toggle result: %v", err)
	}
	if res.Active || res.Count != 0 {
		t.Errorf("second toggle = %+v, want inactive with count 0", res)
	}
}

func TestDeletePostFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/posts/p1", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE /api/posts/p1 failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if !env.Success {
		t.Fatalf("delete failed: %s", env.Error)
	}

	// The post disappears from the feed right away.
	list := getEnvelope(t, srv, "/api/posts")
	var posts []domain.Post
	if err := json.Unmarshal(list.Data, &posts); err != nil {
		t.Fatalf("failed to decode posts: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("feed still holds %d posts after delete, want 0", len(posts))
	}
}

func TestChallengesFilterParams(t *testing.T) {
	srv, _ := newTestServer(t)

	env := getEnvelope(t, srv, "/api/challenges?difficulty=easy&status=active")
	if !env.Success {
		t.Fatalf("challenges failed: %s", env.Error)
	}

	var challenges []domain.Challenge
	if err := json.Unmarshal(env.Data, &challenges); err != nil {
		t.Fatalf("failed to decode challenges: %v", err)
	}
	if len(challenges) != 1 || challenges[0].ID != "c1" {
		t.Errorf("filtered challenges = %d, want exactly [c1]", len(challenges))
	}
}

func TestUserSearchRanking(t *testing.T) {
	srv, _ := newTestServer(t)

	env := getEnvelope(t, srv, "/api/users/search?q=jane")
	if !env.Success {
		t.Fatalf("user search failed: %s", env.Error)
	}

	var users []domain.User
	if err := json.Unmarshal(env.Data, &users); err != nil {
		t.Fatalf("failed to decode users: %v", err)
	}
	if len(users) == 0 || users[0].Username != "jane" {
		t.Errorf("top hit = %v, want the exact username match", users)
	}
}

func TestBreadcrumbEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name            string
		path            string
		expectedSection string
		expectedPage    string
	}{
		{name: "root", path: "/", expectedSection: "Community", expectedPage: "Feed"},
		{name: "challenge child", path: "/challenges/active", expectedSection: "Community", expectedPage: "Active Challenges"},
		{name: "unknown falls back", path: "/nope", expectedSection: domain.DefaultSection, expectedPage: domain.DefaultTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := getEnvelope(t, srv, "/api/navigation/breadcrumb?path="+tt.path)
			if !env.Success {
				t.Fatalf("breadcrumb failed: %s", env.Error)
			}
			var bc domain.Breadcrumb
			if err := json.Unmarshal(env.Data, &bc); err != nil {
				t.Fatalf("failed to decode breadcrumb: %v", err)
			}
			if bc.Section != tt.expectedSection || bc.Page != tt.expectedPage {
				t.Errorf("breadcrumb(%s) = {%s, %s}, want {%s, %s}",
					tt.path, bc.Section, bc.Page, tt.expectedSection, tt.expectedPage)
			}
		})
	}
}

func TestReloadEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/reload", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/reload failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("reload status = %d, want 202", resp.StatusCode)
	}

	// Trigger still pending, second request is rejected.
	resp2, err := http.Post(srv.URL+"/api/reload", "application/json", nil)
	if err != nil {
		t.Fatalf("second POST /api/reload failed: %v", err)
	}
	defer resp2.Body.Close()

	if resp2.StatusCode != http.StatusTooManyRequests {
		t.Errorf("second reload status = %d, want 429", resp2.StatusCode)
	}
}
