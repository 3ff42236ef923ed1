package main

import (
	"context"
	"fmt"
	"forum-feed/auth"
	"forum-feed/domain"
	"forum-feed/domain/feed"
	"forum-feed/internal"
	"forum-feed/observability"
	"forum-feed/projection"
	"forum-feed/repositories"
	"forum-feed/services"
	"forum-feed/ui"
	"log/slog"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/term"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Feed terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	colours := !config.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	renderer, err := ui.NewRenderer(config.Renderer, config.ContinuationWindow, colours)
	if err != nil {
		return exitConfig, err
	}

	// 2. Channel snapshot
	repository := repositories.NewSnapshotRepository(logger, config.SnapshotPath)
	snapshot, err := repository.Load()
	if err != nil {
		return exitRuntime, fmt.Errorf("snapshot loading failed: %w", err)
	}

	// 3. Viewer, capabilities and feed service
	summarizer, err := projection.NewRowSummarizer(viewerFrom(config, snapshot))
	if err != nil {
		return exitRuntime, fmt.Errorf("summarizer init failed: %w", err)
	}
	provider := auth.NewStaticCapabilityProvider(internal.SplitList(config.ManageCommunities), nil)
	stats := observability.NewFeedStats(logger)
	service, err := services.NewFeedService(logger, provider, renderer, summarizer, cliActions(logger), stats, config.CacheMaxCost)
	if err != nil {
		return exitRuntime, err
	}
	defer service.Close()

	// 4. Build and render
	rows, err := service.Rows(ctx, services.FeedRequest{
		CommunityID: config.CommunityID,
		Threads:     snapshot.Threads,
		Topics:      snapshot.Topics,
		ReadStatus:  snapshot.ReadStatus,
	})
	if err != nil {
		return exitRuntime, fmt.Errorf("feed build failed: %w", err)
	}
	if err = service.Render(os.Stdout, rows); err != nil {
		return exitRuntime, fmt.Errorf("render failed: %w", err)
	}

	stats.LogSummary()
	if config.MetricsTextfile != "" {
		if err = observability.WriteTextfile(config.MetricsTextfile, stats); err != nil {
			return exitRuntime, fmt.Errorf("metrics export failed: %w", err)
		}
	}
	return exitOK, nil
}

func viewerFrom(config internal.Config, snapshot repositories.Snapshot) feed.Viewer {
	viewer := feed.Viewer{
		CurrentThreadID: config.CurrentThreadID,
		ActiveUsers:     internal.SplitList(config.ActiveUsers),
	}
	if config.CurrentUserID == "" {
		return viewer
	}
	viewer.CurrentUser = snapshot.FindUser(config.CurrentUserID)
	if viewer.CurrentUser == nil {
		viewer.CurrentUser = &domain.User{ID: config.CurrentUserID}
	}
	return viewer
}

// cliActions wires the callbacks a terminal can offer. Rendering only lists them.
func cliActions(logger *slog.Logger) *domain.Actions {
	return &domain.Actions{
		Open: func(threadID string) {
			logger.Info("Open thread", "thread", threadID)
		},
		Read: func(threadID string) {
			logger.Info("Mark thread read", "thread", threadID)
		},
		Unread: func(threadID string) {
			logger.Info("Mark thread unread", "thread", threadID)
		},
		Delete: func(messageID string) {
			logger.Info("Delete message", "message", messageID)
		},
		Pin: func(threadID string) {
			logger.Info("Pin thread", "thread", threadID)
		},
	}
}
