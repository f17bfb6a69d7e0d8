package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/fozzle/internal/constants"
	"github.com/julianstephens/fozzle/internal/models"
)

type jsonDocument struct {
	Version    int                        `json:"version"`
	Settings   models.Settings            `json:"settings"`
	Activities map[string]models.Activity `json:"activities"`
	Ideas      map[string]models.Idea     `json:"ideas"`
}

// JSONStore is the flat-file Provider, selected by a .json config path.
// Useful for inspection and tests; the SQLite store is the default.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version: 1,
		Settings: models.Settings{
			Timezone:             constants.DefaultTimezone,
			DailyGoal:            constants.DefaultDailyGoal,
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
		},
		Activities: make(map[string]models.Activity),
		Ideas:      make(map[string]models.Idea),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'fozzle init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Activities == nil {
		s.doc.Activities = make(map[string]models.Activity)
	}
	if s.doc.Ideas == nil {
		s.doc.Ideas = make(map[string]models.Idea)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) ListActivities() ([]models.Activity, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	activities := make([]models.Activity, 0, len(s.doc.Activities))
	for _, a := range s.doc.Activities {
		activities = append(activities, a)
	}
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Category != activities[j].Category {
			return activities[i].Category < activities[j].Category
		}
		return activities[i].Order < activities[j].Order
	})
	return activities, nil
}

func (s *JSONStore) CreateActivity(a models.Activity) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, exists := s.doc.Activities[a.ID]; exists {
		return fmt.Errorf("activity %s already exists", a.ID)
	}
	s.doc.Activities[a.ID] = a
	return s.save()
}

func (s *JSONStore) UpdateActivity(a models.Activity) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, exists := s.doc.Activities[a.ID]; !exists {
		return fmt.Errorf("activity %s not found", a.ID)
	}
	s.doc.Activities[a.ID] = a
	return s.save()
}

func (s *JSONStore) DeleteActivity(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.doc.Activities, id)
	return s.save()
}

func (s *JSONStore) ListIdeas() ([]models.Idea, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	ideas := make([]models.Idea, 0, len(s.doc.Ideas))
	for _, i := range s.doc.Ideas {
		ideas = append(ideas, i)
	}
	sort.Slice(ideas, func(i, j int) bool {
		return ideas[i].CreatedAt.After(ideas[j].CreatedAt)
	})
	return ideas, nil
}

func (s *JSONStore) CreateIdea(i models.Idea) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, exists := s.doc.Ideas[i.ID]; exists {
		return fmt.Errorf("idea %s already exists", i.ID)
	}
	s.doc.Ideas[i.ID] = i
	return s.save()
}

func (s *JSONStore) UpdateIdea(i models.Idea) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, exists := s.doc.Ideas[i.ID]; !exists {
		return fmt.Errorf("idea %s not found", i.ID)
	}
	s.doc.Ideas[i.ID] = i
	return s.save()
}

func (s *JSONStore) DeleteIdea(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.doc.Ideas, id)
	return s.save()
}
