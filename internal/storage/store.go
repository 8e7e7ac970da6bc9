package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) lockPath() string {
	return filepath.Join(s.baseDir, ".lock")
}

// RunMetadata records one rendered video.
type RunMetadata struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
	Frames    int       `json:"frames"`
	FPS       float64   `json:"fps"`
	Duration  float64   `json:"duration"`
	NX        int       `json:"nx"`
	NY        int       `json:"ny"`
	VMax      float64   `json:"vmax"`
	Colormap  string    `json:"colormap"`
	Order     string    `json:"order"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
}

// Save writes meta under a fresh run directory and returns its ID. The
// store directory must exist (see Init).
func (s *Store) Save(meta RunMetadata) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	base := filepath.Base(meta.Output)
	base = base[:len(base)-len(filepath.Ext(base))]
	runID := fmt.Sprintf("%s_%s", base, strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	meta.ID = runID

	// concurrent renders may share a data directory
	lock := flock.New(s.lockPath())
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("acquire store lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns all recorded runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
