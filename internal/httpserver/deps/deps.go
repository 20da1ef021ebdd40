package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itg-platform/docverse/internal/domain"
	"github.com/itg-platform/docverse/internal/gateway"
	"github.com/itg-platform/docverse/internal/logger"
	"github.com/itg-platform/docverse/internal/store/memory"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	AllowedHosts  []string           // Host headers allowed to access the server
	AllowedCIDRS  []string           // IPs allowed to access admin endpoints
	TrustProxy    bool               // true if running behind a trusted reverse proxy
	Gateway       *gateway.Gateway   // Envelope-based content gateway
	Store         *memory.Store      // In-memory record store
	Resolver      *domain.Resolver   // Breadcrumb resolver
	RedisClient   *redis.Client      // Redis client connection (nil when disabled)
	SeedFile      string             // Path to the content fixtures file
	ReloadTrigger chan struct{}      // Channel to trigger manual fixtures reload
}
