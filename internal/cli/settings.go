package cli

import (
	"fmt"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Update settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	settings := ctx.Store.Settings()
	fmt.Printf("Timezone:      %s\n", settings.Timezone)
	fmt.Printf("Daily goal:    %d\n", settings.DailyGoal)
	fmt.Printf("Notifications: %v\n", settings.NotificationsEnabled)
	return nil
}

type SettingsSetCmd struct {
	Timezone      string `help:"IANA timezone name."`
	DailyGoal     int    `help:"Daily completion goal." default:"0"`
	Notifications string `help:"Session notices (on|off)."`
}

func (c *SettingsSetCmd) Validate() error {
	if c.Timezone == "" && c.DailyGoal == 0 && c.Notifications == "" {
		return fmt.Errorf("nothing to change: pass --timezone, --daily-goal or --notifications")
	}
	if c.Notifications != "" && c.Notifications != "on" && c.Notifications != "off" {
		return fmt.Errorf("invalid --notifications value %q (expected on or off)", c.Notifications)
	}
	return nil
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	settings := ctx.Store.Settings()
	if c.Timezone != "" {
		settings.Timezone = c.Timezone
	}
	if c.DailyGoal > 0 {
		settings.DailyGoal = c.DailyGoal
	}
	if c.Notifications != "" {
		settings.NotificationsEnabled = c.Notifications == "on"
	}

	if err := ctx.Store.UpdateSettings(settings); err != nil {
		return err
	}

	fmt.Println("Settings updated")
	return nil
}
