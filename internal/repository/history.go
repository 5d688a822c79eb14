package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
	"github.com/tagmint/tagmint/internal/domain"
)

const (
	// HistorySchemaVersion defines the current schema version for history files
	HistorySchemaVersion = "1.0.0"
	// HistoryFilePermissions defines the permissions for history files
	HistoryFilePermissions = 0600
	// HistoryDirPermissions defines the permissions for the history directory
	HistoryDirPermissions = 0700
	// LockTimeout defines the maximum time to wait for a lock
	LockTimeout = 10 * time.Second
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 100 * time.Millisecond
)

// HistoryRepository defines the interface for the local record of created tags.
type HistoryRepository interface {
	Append(ctx context.Context, record *domain.TagRecord) error
	List(ctx context.Context) ([]domain.TagRecord, error)
}

// historyFile wraps the records with schema metadata.
type historyFile struct {
	SchemaVersion string             `json:"schema_version"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Records       []domain.TagRecord `json:"records"`
}

// JSONHistoryRepository implements HistoryRepository using JSON file storage.
// A file lock guards the history file against concurrent invocations.
type JSONHistoryRepository struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewJSONHistoryRepository creates a new JSON-based history repository.
func NewJSONHistoryRepository(fs afero.Fs, dir string) *JSONHistoryRepository {
	if dir == "" {
		dir = ".tagmint"
	}
	return &JSONHistoryRepository{fs: fs, dir: dir}
}

func (r *JSONHistoryRepository) historyPath() string {
	return filepath.Join(r.dir, "history.json")
}

func (r *JSONHistoryRepository) lockPath() string {
	return filepath.Join(r.dir, "history.lock")
}

// Append adds a record to the history file, creating it on first use.
func (r *JSONHistoryRepository) Append(ctx context.Context, record *domain.TagRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fs.MkdirAll(r.dir, HistoryDirPermissions); err != nil {
		return fmt.Errorf("failed to ensure history directory: %w", err)
	}
	lock := flock.New(r.lockPath())
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, LockRetryInterval)
	if err != nil {
		return fmt.Errorf("failed to acquire history lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire history lock within timeout")
	}
	defer lock.Unlock() //nolint:errcheck // nothing to do about unlock failure
	file, err := r.read()
	if err != nil {
		return err
	}
	file.Records = append(file.Records, *record)
	file.UpdatedAt = time.Now().UTC()
	file.SchemaVersion = HistorySchemaVersion
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := afero.WriteFile(r.fs, r.historyPath(), data, HistoryFilePermissions); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// List returns all recorded tags, oldest first.
func (r *JSONHistoryRepository) List(ctx context.Context) ([]domain.TagRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exists, err := afero.Exists(r.fs, r.historyPath())
	if err != nil {
		return nil, fmt.Errorf("failed to check history file: %w", err)
	}
	if !exists {
		return nil, nil
	}
	lock := flock.New(r.lockPath())
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	locked, err := lock.TryRLockContext(lockCtx, LockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire history lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire history lock within timeout")
	}
	defer lock.Unlock() //nolint:errcheck // nothing to do about unlock failure
	file, err := r.read()
	if err != nil {
		return nil, err
	}
	return file.Records, nil
}

func (r *JSONHistoryRepository) read() (*historyFile, error) {
	exists, err := afero.Exists(r.fs, r.historyPath())
	if err != nil {
		return nil, fmt.Errorf("failed to check history file: %w", err)
	}
	if !exists {
		return &historyFile{SchemaVersion: HistorySchemaVersion}, nil
	}
	data, err := afero.ReadFile(r.fs, r.historyPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	var file historyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return &file, nil
}
