package repositories

import (
	"encoding/json"
	"fmt"
	"forum-feed/domain"
	"forum-feed/errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
)

type ISnapshotRepository interface {
	Load() (Snapshot, error)
	Save(snapshot Snapshot) error
}

// Snapshot is everything one channel page fetched upstream: the threads, the topics anchoring
// them in the feed, the viewer's read status and the users that may be looked up by id.
// Topics may reference threads or messages that are not part of the snapshot.
type Snapshot struct {
	CommunityID string             `json:"communityId" yaml:"communityId" validate:"required"`
	ChannelID   string             `json:"channelId" yaml:"channelId"`
	Threads     []domain.Thread    `json:"threads" yaml:"threads" validate:"dive"`
	Topics      []domain.Topic     `json:"topics" yaml:"topics" validate:"dive"`
	ReadStatus  *domain.ReadStatus `json:"readStatus,omitempty" yaml:"readStatus,omitempty"`
	Users       []domain.User      `json:"users,omitempty" yaml:"users,omitempty" validate:"dive"`
}

// FindUser returns the user with the given id, nil when unknown.
func (s Snapshot) FindUser(id string) *domain.User {
	user, ok := lo.Find(s.Users, func(u domain.User) bool {
		return u.ID == id
	})
	if !ok {
		return nil
	}
	return &user
}

// SnapshotRepository reads and writes one snapshot file.
// Files ending in .yaml or .yml are YAML, anything else is JSON.
type SnapshotRepository struct {
	log      *slog.Logger
	path     string
	validate *validator.Validate
}

func NewSnapshotRepository(log *slog.Logger, path string) *SnapshotRepository {
	return &SnapshotRepository{
		log:      log,
		path:     path,
		validate: validator.New(),
	}
}

// Load only checks the structural shape (ids present, known enum values).
// Dangling references are left for the feed to report.
func (r *SnapshotRepository) Load() (Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, fmt.Errorf("%w: %s", errors.ErrSnapshotNotFound, r.path)
		}
		return Snapshot{}, fmt.Errorf("read snapshot %s: %w", r.path, err)
	}

	var snapshot Snapshot
	if err = r.unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", errors.ErrInvalidSnapshot, err)
	}
	if err = r.validate.Struct(snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", errors.ErrInvalidSnapshot, err)
	}

	r.log.Debug("Snapshot loaded",
		"path", r.path,
		"threads", len(snapshot.Threads),
		"topics", len(snapshot.Topics),
		"unread", snapshot.ReadStatus != nil && !snapshot.ReadStatus.Read)
	return snapshot, nil
}

func (r *SnapshotRepository) Save(snapshot Snapshot) error {
	if err := r.validate.Struct(snapshot); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidSnapshot, err)
	}
	data, err := r.marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	return os.WriteFile(r.path, data, 0o644)
}

func (r *SnapshotRepository) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(r.path))
	return ext == ".yaml" || ext == ".yml"
}

func (r *SnapshotRepository) unmarshal(data []byte, snapshot *Snapshot) error {
	if r.isYAML() {
		return yaml.Unmarshal(data, snapshot)
	}
	return json.Unmarshal(data, snapshot)
}

func (r *SnapshotRepository) marshal(snapshot Snapshot) ([]byte, error) {
	if r.isYAML() {
		return yaml.Marshal(snapshot)
	}
	return json.MarshalIndent(snapshot, "", "  ")
}
