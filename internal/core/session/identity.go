package session

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	directoryStampLayout = "2006.01.02_15.04"
	fileStampLayout      = "2006.01.02_15.04.05"
)

// RunIdentity is the per-invocation identity. It is created once at process entry and never mutated.
type RunIdentity struct {
	id           uuid.UUID
	startedAtUTC time.Time
}

// NewRunIdentity creates a RunIdentity anchored at the given instant
func NewRunIdentity(now time.Time) RunIdentity {
	return RunIdentity{
		id:           uuid.New(),
		startedAtUTC: now.UTC(),
	}
}

// ID returns the run correlation identifier
func (r RunIdentity) ID() string {
	return r.id.String()
}

// StartedAtUTC returns the UTC instant the run started
func (r RunIdentity) StartedAtUTC() time.Time {
	return r.startedAtUTC
}

// DirectoryStamp returns the minute-resolution stamp used for the artifact directory
func (r RunIdentity) DirectoryStamp() string {
	return r.startedAtUTC.Format(directoryStampLayout)
}

// FileStamp returns the second-resolution stamp used for unique filenames
func (r RunIdentity) FileStamp() string {
	return r.startedAtUTC.Format(fileStampLayout)
}

// IsZero reports whether the identity was never initialized
func (r RunIdentity) IsZero() bool {
	return r.startedAtUTC.IsZero()
}

// ArtifactPaths holds the run's artifact directory and log file location
type ArtifactPaths struct {
	BaseDirectory string
	LogFilePath   string
}

// DeriveArtifactPaths computes the artifact directory and log file path for a tool run.
// It does not touch the filesystem.
func DeriveArtifactPaths(workDir, toolName string, identity RunIdentity) (ArtifactPaths, error) {
	if toolName == "" {
		return ArtifactPaths{}, fmt.Errorf("tool name cannot be empty")
	}
	if identity.IsZero() {
		return ArtifactPaths{}, fmt.Errorf("run identity is not initialized")
	}

	base := filepath.Join(workDir, toolName+"_Artifacts", identity.DirectoryStamp())
	logName := fmt.Sprintf("%sLog_%sz.log", toolName, identity.FileStamp())

	return ArtifactPaths{
		BaseDirectory: base,
		LogFilePath:   filepath.Join(base, logName),
	}, nil
}

// Resolve places an artifact name inside the base directory. Absolute paths are returned unchanged.
func (p ArtifactPaths) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.BaseDirectory, name)
}
