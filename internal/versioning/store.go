// Package versioning tracks the append-only version history of generated
// requirement documents, persisted per project as metadata.json.
package versioning

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"reqdoc/internal/types"
)

// metadataFile is the per-project history file under the project directory.
const metadataFile = "metadata.json"

// Store persists project metadata under <root>/<projectId>/metadata.json.
//
// Load, NextVersion and AddVersion individually do read-modify-write on the
// metadata file and are not atomic with respect to each other. Callers that
// assign a version number before appending it must hold the project's Guard
// mutex across the whole sequence, or two concurrent requests can observe
// the same count and corrupt the strictly-increasing version invariant.
type Store struct {
	root string

	mu     sync.Mutex
	guards map[string]*sync.Mutex
}

// NewStore creates a Store rooted at the output directory.
func NewStore(root string) *Store {
	return &Store{
		root:   root,
		guards: make(map[string]*sync.Mutex),
	}
}

// Guard returns the mutex serializing version assignment for one project.
func (s *Store) Guard(projectID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard, ok := s.guards[projectID]
	if !ok {
		guard = &sync.Mutex{}
		s.guards[projectID] = guard
	}
	return guard
}

// ProjectDir returns the output directory for a project, creating it if missing.
func (s *Store) ProjectDir(projectID string) (string, error) {
	dir := filepath.Join(s.root, projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create project directory: %w", err)
	}
	return dir, nil
}

func (s *Store) metadataPath(projectID string) string {
	return filepath.Join(s.root, projectID, metadataFile)
}

// Load returns the metadata for a project, or empty metadata if the project
// has no versions yet. A missing project is never an error.
func (s *Store) Load(projectID string) (*types.ProjectMetadata, error) {
	data, err := os.ReadFile(s.metadataPath(projectID))
	if err != nil {
		if os.IsNotExist(err) {
			return &types.ProjectMetadata{Versions: []types.VersionInfo{}}, nil
		}
		return nil, fmt.Errorf("failed to read metadata for %s: %w", projectID, err)
	}

	var meta types.ProjectMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metadata for %s: %w", projectID, err)
	}
	if meta.Versions == nil {
		meta.Versions = []types.VersionInfo{}
	}
	return &meta, nil
}

// NextVersion returns the version number the next generation will receive.
func (s *Store) NextVersion(projectID string) (int, error) {
	meta, err := s.Load(projectID)
	if err != nil {
		return 0, err
	}
	return len(meta.Versions) + 1, nil
}

// AddVersion appends a new VersionInfo with the current timestamp and
// persists the updated metadata. The version number is count+1 at the time
// of the call.
func (s *Store) AddVersion(projectID, fileName, summary string) (*types.VersionInfo, error) {
	meta, err := s.Load(projectID)
	if err != nil {
		return nil, err
	}

	info := types.VersionInfo{
		Version:   len(meta.Versions) + 1,
		FileName:  fileName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary:   summary,
	}
	meta.Versions = append(meta.Versions, info)

	if err := s.save(projectID, meta); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *Store) save(projectID string, meta *types.ProjectMetadata) error {
	if _, err := s.ProjectDir(projectID); err != nil {
		return err
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata for %s: %w", projectID, err)
	}
	if err := os.WriteFile(s.metadataPath(projectID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata for %s: %w", projectID, err)
	}
	return nil
}
