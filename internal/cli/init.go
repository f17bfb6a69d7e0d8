package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fozzle/internal/constants"
	"github.com/julianstephens/fozzle/internal/models"
	"github.com/julianstephens/fozzle/internal/timeutil"
)

type InitCmd struct {
	Timezone  string `help:"IANA timezone name (e.g. America/New_York)."`
	DailyGoal int    `help:"Daily completion goal." default:"0"`
	NoPrompt  bool   `help:"Skip the interactive setup form."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Remote.Init(); err != nil {
		return err
	}

	settings := models.Settings{
		Timezone:             constants.DefaultTimezone,
		DailyGoal:            constants.DefaultDailyGoal,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
	}
	if c.Timezone != "" {
		settings.Timezone = c.Timezone
	}
	if c.DailyGoal > 0 {
		settings.DailyGoal = c.DailyGoal
	}

	if !c.NoPrompt && c.Timezone == "" && c.DailyGoal == 0 {
		if err := promptSettings(&settings); err != nil {
			return err
		}
	}

	if _, err := timeutil.LoadLocation(settings.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	if err := ctx.Remote.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Initialized fozzle storage at: %s\n", ctx.Remote.GetConfigPath())
	return nil
}

func promptSettings(settings *models.Settings) error {
	goal := strconv.Itoa(settings.DailyGoal)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone").
				Description("IANA name, or 'Local' for the system timezone").
				Value(&settings.Timezone).
				Validate(func(s string) error {
					_, err := timeutil.LoadLocation(strings.TrimSpace(s))
					return err
				}),
			huh.NewInput().
				Title("Daily goal").
				Description("Completions per day you're aiming for").
				Value(&goal).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 1 {
						return fmt.Errorf("daily goal must be at least 1")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Session notices").
				Description("Show welcome-back and missed-day notices").
				Value(&settings.NotificationsEnabled),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	settings.Timezone = strings.TrimSpace(settings.Timezone)
	if i, err := strconv.Atoi(goal); err == nil {
		settings.DailyGoal = i
	}
	return nil
}
