package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/fozzle/internal/constants"
)

// FileGate is the file-backed once-per-day notice gate, stored as a small JSON
// document next to the config database. Keyed by notice kind, value is the
// date the notice was last shown.
type FileGate struct {
	path string
}

func NewFileGate(configDir string) *FileGate {
	return &FileGate{path: filepath.Join(configDir, constants.GateFileName)}
}

func (g *FileGate) read() (map[constants.NoticeKind]string, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[constants.NoticeKind]string{}, nil
		}
		return nil, fmt.Errorf("failed to read notice gate: %w", err)
	}
	state := map[constants.NoticeKind]string{}
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt gate file only risks a duplicate notice; start fresh.
		return map[constants.NoticeKind]string{}, nil
	}
	return state, nil
}

func (g *FileGate) write(state map[constants.NoticeKind]string) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize notice gate: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(g.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(g.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write notice gate: %w", err)
	}
	return nil
}

func (g *FileGate) WasShownToday(kind constants.NoticeKind, today string) (bool, error) {
	state, err := g.read()
	if err != nil {
		return false, err
	}
	return state[kind] == today, nil
}

func (g *FileGate) MarkShownToday(kind constants.NoticeKind, today string) error {
	state, err := g.read()
	if err != nil {
		return err
	}
	state[kind] = today
	return g.write(state)
}

func (g *FileGate) Clear(kind constants.NoticeKind) error {
	state, err := g.read()
	if err != nil {
		return err
	}
	delete(state, kind)
	return g.write(state)
}
