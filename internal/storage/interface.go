// Package storage defines the persistence collaborator consumed by the
// activity store. All reads and writes are scoped to the single local user; a
// failed call triggers the store's rollback path.
package storage

import "github.com/julianstephens/fozzle/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Activities
	ListActivities() ([]models.Activity, error)
	CreateActivity(models.Activity) error
	UpdateActivity(models.Activity) error
	DeleteActivity(id string) error

	// Ideas
	ListIdeas() ([]models.Idea, error)
	CreateIdea(models.Idea) error
	UpdateIdea(models.Idea) error
	DeleteIdea(id string) error

	// Utils
	GetConfigPath() string
}
