package internal

import (
	"strings"
	"time"
)

type Config struct {
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	SnapshotPath       string        `env:"SNAPSHOT_PATH,required=true"`
	Renderer           string        `env:"RENDERER,default=table"`
	CommunityID        string        `env:"COMMUNITY_ID,required=true"`
	ManageCommunities  string        `env:"MANAGE_COMMUNITIES"`
	CurrentUserID      string        `env:"CURRENT_USER_ID"`
	CurrentThreadID    string        `env:"CURRENT_THREAD_ID"`
	ActiveUsers        string        `env:"ACTIVE_USERS"`
	ContinuationWindow time.Duration `env:"CONTINUATION_WINDOW,default=5m"`
	CacheMaxCost       int64         `env:"CACHE_MAX_COST,default=1000"`
	NoColor            bool          `env:"NO_COLOR,default=false"`
	MetricsTextfile    string        `env:"METRICS_TEXTFILE"`
}

// SplitList parses a comma separated env value, skipping blanks.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
