package deps

import (
	"time"

	"github.com/MrSnakeDoc/marquee/internal/catalog"
	"github.com/MrSnakeDoc/marquee/internal/logger"
	"github.com/MrSnakeDoc/marquee/internal/query"
	"github.com/redis/go-redis/v9"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time // for testing, defaults to time.Now
	Catalog       *catalog.Catalog // in-memory festival catalog
	Engine        *query.Engine    // search/filter/sort pipeline over the catalog
	RedisClient   *redis.Client    // Redis client connection
	SimilarLimit  int              // cap for similar artists/venues on detail pages
	SeedDemoData  bool             // seed demo ledgers when a fresh profile signs in
	ReloadTrigger chan struct{}    // Channel to trigger manual catalog reload
}
