package main

import (
	"encoding/binary"
	"fmt"
	"forum-feed/domain"
	"forum-feed/repositories"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

// Config drives the generator. The same seed and start always give the same snapshot.
type Config struct {
	Output      string    `envconfig:"FIXTURES_OUTPUT" default:"./test_data/snapshot.json" validate:"required"`
	CommunityID string    `envconfig:"FIXTURES_COMMUNITY_ID" default:"acme" validate:"required"`
	Threads     int       `envconfig:"FIXTURES_THREADS" default:"6" validate:"min=0"`
	Users       int       `envconfig:"FIXTURES_USERS" default:"4" validate:"min=0"`
	Dangling    int       `envconfig:"FIXTURES_DANGLING" default:"1" validate:"min=0"`
	Seed        uint64    `envconfig:"FIXTURES_SEED" default:"42"`
	Start       time.Time `envconfig:"FIXTURES_START" default:"2024-01-01T09:00:00Z"`
}

var usernames = []string{"alice", "bob", "clara", "dan", "eve", "frank", "grace", "heidi"}

var bodies = []string{
	"Has anyone tried the new build?",
	"Works for me",
	"ping @%s",
	"urgent !%s",
	"Closing this, see the other thread",
	"+1",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fixtures generation failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	logger := logs.GetLoggerFromLevel(slog.LevelInfo)

	snapshot, err := newGenerator(config.Seed).generate(config)
	if err != nil {
		return err
	}
	if err = repositories.NewSnapshotRepository(logger, config.Output).Save(snapshot); err != nil {
		return err
	}
	logger.Info("Snapshot written",
		"path", config.Output,
		"threads", len(snapshot.Threads),
		"topics", len(snapshot.Topics))
	return nil
}

func loadConfig() (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

// generator draws every random value, ids included, from one seeded source.
type generator struct {
	source *rand.ChaCha8
	rnd    *rand.Rand
}

func newGenerator(seed uint64) *generator {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	source := rand.NewChaCha8(key)
	return &generator{source: source, rnd: rand.New(source)}
}

func (g *generator) newID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.source)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

func (g *generator) generate(config Config) (repositories.Snapshot, error) {
	ids := make([]string, 0, 2+config.Users+3*config.Threads+6*config.Threads+3*config.Dangling)
	for range cap(ids) {
		id, err := g.newID()
		if err != nil {
			return repositories.Snapshot{}, err
		}
		ids = append(ids, id)
	}
	next := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	users := make([]domain.User, 0, config.Users)
	for i := range config.Users {
		name := usernames[i%len(usernames)]
		users = append(users, domain.User{ID: next(), Username: name, DisplayName: name})
	}

	start := config.Start.UTC().Truncate(time.Minute)
	snapshot := repositories.Snapshot{CommunityID: config.CommunityID, ChannelID: next(), Users: users}

	for i := range config.Threads {
		thread := domain.Thread{
			ID:          next(),
			IncrementID: i + 1,
			State:       domain.ThreadStateOpen,
			ChannelID:   snapshot.ChannelID,
			ViewType:    []domain.ViewType{domain.ViewTypeChat, domain.ViewTypeForum, domain.ViewTypeTopic}[g.rnd.IntN(3)],
		}
		if g.rnd.IntN(2) == 0 {
			thread.Title = fmt.Sprintf("Thread #%d", i+1)
		}
		if g.rnd.IntN(5) == 0 {
			thread.State = domain.ThreadStateClose
		}

		at := start.Add(time.Duration(i) * time.Hour)
		for range 1 + g.rnd.IntN(4) {
			at = at.Add(time.Duration(1+g.rnd.IntN(10)) * time.Minute)
			thread.Messages = append(thread.Messages, g.message(next(), users, at))
		}
		snapshot.Threads = append(snapshot.Threads, thread)

		anchor := thread.Messages[g.rnd.IntN(len(thread.Messages))]
		snapshot.Topics = append(snapshot.Topics, domain.Topic{
			ID:        next(),
			ThreadID:  thread.ID,
			MessageID: anchor.ID,
			SentAt:    anchor.CreatedAt,
		})
	}

	for range config.Dangling {
		snapshot.Topics = append(snapshot.Topics, domain.Topic{
			ID:        next(),
			ThreadID:  next(),
			MessageID: next(),
			SentAt:    start.Add(time.Duration(g.rnd.IntN(config.Threads+1)) * time.Hour),
		})
	}

	snapshot.ReadStatus = &domain.ReadStatus{
		LastReadAt: start.Add(time.Duration(config.Threads) * time.Hour / 2).UnixMilli(),
		Read:       false,
	}
	return snapshot, nil
}

func (g *generator) message(id string, users []domain.User, at time.Time) domain.Message {
	message := domain.Message{ID: id, CreatedAt: at}
	if len(users) > 0 {
		author := users[g.rnd.IntN(len(users))]
		message.Author = &author
	}
	body := bodies[g.rnd.IntN(len(bodies))]
	if body == bodies[2] || body == bodies[3] {
		if len(users) == 0 {
			body = "hello"
		} else {
			body = fmt.Sprintf(body, users[g.rnd.IntN(len(users))].Username)
		}
	}
	message.Body = body
	return message
}
