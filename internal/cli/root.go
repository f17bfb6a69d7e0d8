package cli

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/julianstephens/fozzle/internal/errors"
	"github.com/julianstephens/fozzle/internal/models"
	"github.com/julianstephens/fozzle/internal/notify"
	"github.com/julianstephens/fozzle/internal/storage"
	"github.com/julianstephens/fozzle/internal/store"
)

type Context struct {
	Remote  storage.Provider
	Store   *store.Store
	Gate    notify.DayGate
	Emitter *ConsoleEmitter
}

// load opens the backend and performs the initial bulk load. A degraded load
// (backend reachable but some collections failed) is reported and tolerated;
// an unreachable backend is fatal to the command.
func (ctx *Context) load() error {
	if err := ctx.Remote.Load(); err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		var le *apperrors.LoadError
		if errors.As(err, &le) {
			fmt.Println("Warning: some data failed to load; starting from an empty set")
			return nil
		}
		return err
	}
	return nil
}

// notifier builds the session notifier over the loaded store's engine.
func (ctx *Context) notifier() *notify.SessionNotifier {
	return notify.NewSessionNotifier(ctx.Store.Engine(), ctx.Gate, ctx.Emitter)
}

// resolveActivity finds an activity by ID, unambiguous ID prefix, or exact
// title (case-insensitive).
func resolveActivity(activities []models.Activity, ref string) (models.Activity, error) {
	var matches []models.Activity
	for _, a := range activities {
		if a.ID == ref {
			return a, nil
		}
		if strings.HasPrefix(a.ID, ref) || strings.EqualFold(a.Title, ref) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Activity{}, fmt.Errorf("no activity matches %q", ref)
	default:
		return models.Activity{}, fmt.Errorf("%q is ambiguous: %d activities match", ref, len(matches))
	}
}

// resolveIdea finds an idea by ID, unambiguous ID prefix, or exact title.
func resolveIdea(ideas []models.Idea, ref string) (models.Idea, error) {
	var matches []models.Idea
	for _, i := range ideas {
		if i.ID == ref {
			return i, nil
		}
		if strings.HasPrefix(i.ID, ref) || strings.EqualFold(i.Title, ref) {
			matches = append(matches, i)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Idea{}, fmt.Errorf("no idea matches %q", ref)
	default:
		return models.Idea{}, fmt.Errorf("%q is ambiguous: %d ideas match", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
