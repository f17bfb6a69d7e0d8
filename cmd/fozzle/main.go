package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/fozzle/internal/cli"
	"github.com/julianstephens/fozzle/internal/constants"
	apperrors "github.com/julianstephens/fozzle/internal/errors"
	"github.com/julianstephens/fozzle/internal/keyring"
	"github.com/julianstephens/fozzle/internal/logger"
	"github.com/julianstephens/fozzle/internal/storage"
	"github.com/julianstephens/fozzle/internal/storage/postgres"
	"github.com/julianstephens/fozzle/internal/storage/sqlite"
	"github.com/julianstephens/fozzle/internal/store"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" default:"~/.config/fozzle/fozzle.db"`
	Postgres bool   `help:"Use the Postgres backend with credentials from the OS keyring."`
	Debug    bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize fozzle storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive board." default:"1"`
	Stats    cli.StatsCmd    `cmd:"" help:"Show today's score and streak."`
	Week     cli.WeekCmd     `cmd:"" help:"Show the weekly review."`
	Session  cli.SessionCmd  `cmd:"" help:"Run the start-of-session notice check."`
	Reset    cli.ResetCmd    `cmd:"" help:"Delete all activities and ideas."`
	Settings cli.SettingsCmd `cmd:"" help:"Show or update settings."`
	Activity struct {
		Add     cli.ActivityAddCmd     `cmd:"" help:"Add a new activity."`
		List    cli.ActivityListCmd    `cmd:"" help:"List activities."`
		Done    cli.ActivityDoneCmd    `cmd:"" help:"Toggle an activity's completion."`
		Reject  cli.ActivityRejectCmd  `cmd:"" help:"Toggle rejection of a noise activity."`
		Move    cli.ActivityMoveCmd    `cmd:"" help:"Move an activity to the other category."`
		Edit    cli.ActivityEditCmd    `cmd:"" help:"Edit an activity."`
		Reorder cli.ActivityReorderCmd `cmd:"" help:"Reorder a category column."`
		Delete  cli.ActivityDeleteCmd  `cmd:"" help:"Delete an activity."`
	} `cmd:"" help:"Manage activities."`
	Idea struct {
		Add     cli.IdeaAddCmd     `cmd:"" help:"Capture a new idea."`
		List    cli.IdeaListCmd    `cmd:"" help:"List captured ideas."`
		Edit    cli.IdeaEditCmd    `cmd:"" help:"Edit an idea."`
		Promote cli.IdeaPromoteCmd `cmd:"" help:"Promote an idea to a signal activity."`
		Delete  cli.IdeaDeleteCmd  `cmd:"" help:"Delete an idea."`
	} `cmd:"" help:"Manage the someday/maybe list."`
	Db     cli.DbCmd    `cmd:"" help:"Manage the storage backend."`
	DebugC cli.DebugCmd `cmd:"" name:"debug" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Signal/noise productivity tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
	}

	remote, err := selectBackend()
	if err != nil {
		apperrors.Fatal(err)
	}
	defer remote.Close()

	emitter := &cli.ConsoleEmitter{}
	appCtx := &cli.Context{
		Remote:  remote,
		Store:   store.New(remote, emitter),
		Gate:    cli.NewFileGate(configDir),
		Emitter: emitter,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// selectBackend picks the storage provider: Postgres when requested (with
// credentials from the OS keyring), a JSON file for .json config paths, and
// SQLite otherwise.
func selectBackend() (storage.Provider, error) {
	if CLI.Postgres {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("no Postgres credentials; run 'fozzle db use-postgres' first: %w", err)
		}
		return postgres.New(connStr), nil
	}
	if strings.HasSuffix(CLI.Config, ".json") {
		return storage.NewJSONStore(CLI.Config), nil
	}
	return sqlite.NewStore(CLI.Config), nil
}
