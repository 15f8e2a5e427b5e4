package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MissingCacheError reports an unusable systems manifest. It is fatal:
// without the manifest no feed can be produced.
type MissingCacheError struct {
	Path string
	Err  error
}

func (e *MissingCacheError) Error() string {
	return fmt.Sprintf("systems manifest unavailable at %s: %v", e.Path, e.Err)
}

func (e *MissingCacheError) Unwrap() error {
	return e.Err
}

// Loader reads the systems manifest and per-system game manifests from
// an RGSX cache directory.
type Loader struct {
	systemsFile string
	gamesDir    string
}

func NewLoader(systemsFile, gamesDir string) *Loader {
	return &Loader{systemsFile: systemsFile, gamesDir: gamesDir}
}

// LoadSystems returns the systems in manifest order. Any read or parse
// failure is a *MissingCacheError.
func (l *Loader) LoadSystems() ([]System, error) {
	data, err := os.ReadFile(l.systemsFile)
	if err != nil {
		return nil, &MissingCacheError{Path: l.systemsFile, Err: err}
	}

	var systems []System
	if err := json.Unmarshal(data, &systems); err != nil {
		return nil, &MissingCacheError{Path: l.systemsFile, Err: fmt.Errorf("failed to parse JSON: %w", err)}
	}

	for i := range systems {
		systems[i].Name = strings.TrimSpace(systems[i].Name)
		systems[i].PlatformName = strings.TrimSpace(systems[i].PlatformName)
		systems[i].Folder = strings.TrimSpace(systems[i].Folder)
	}

	return systems, nil
}

// LoadGames reads the game manifest for one system. Errors here are
// per-system recoverable: the caller logs a warning and emits an empty
// category.
func (l *Loader) LoadGames(system System) ([]Game, error) {
	path := filepath.Join(l.gamesDir, system.DisplayName()+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var games []Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return games, nil
}
