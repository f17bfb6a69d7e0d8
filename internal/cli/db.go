package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/fozzle/internal/keyring"
	"github.com/julianstephens/fozzle/internal/storage/postgres"
)

type DbCmd struct {
	UsePostgres      DbUsePostgresCmd      `cmd:"" help:"Store a Postgres connection string and initialize the remote schema."`
	ClearCredentials DbClearCredentialsCmd `cmd:"" help:"Remove the stored Postgres credentials from the OS keyring."`
	Status           DbStatusCmd           `cmd:"" help:"Show the active storage backend."`
}

type DbUsePostgresCmd struct {
	ConnectionString string `arg:"" help:"Postgres connection string (URL or DSN form)."`
}

func (c *DbUsePostgresCmd) Run(ctx *Context) error {
	// Validate the connection before committing the credentials.
	remote := postgres.New(c.ConnectionString)
	if err := remote.Init(); err != nil {
		return fmt.Errorf("could not initialize Postgres storage: %w", err)
	}
	defer remote.Close()

	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}

	fmt.Println("Postgres credentials stored; run commands with --postgres to use them")
	return nil
}

type DbClearCredentialsCmd struct{}

func (c *DbClearCredentialsCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No stored credentials")
			return nil
		}
		return err
	}
	fmt.Println("Postgres credentials removed")
	return nil
}

type DbStatusCmd struct{}

func (c *DbStatusCmd) Run(ctx *Context) error {
	fmt.Printf("Backend: %s\n", ctx.Remote.GetConfigPath())
	if _, err := keyring.GetConnectionString(); err == nil {
		fmt.Println("Postgres credentials: stored")
	} else {
		fmt.Println("Postgres credentials: none")
	}
	return nil
}
