package main

import (
	"context"
	"fmt"
	"io"

	"github.com/osse101/CaseOpener_Go/internal/database"
)

// Migrator is the subset of database.Migrator the commands drive.
type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Status(ctx context.Context) ([]database.MigrationState, error)
	Version(ctx context.Context) (int64, error)
}

type UpCommand struct{}

func (c *UpCommand) Name() string        { return "up" }
func (c *UpCommand) Description() string { return "Apply all pending migrations" }

func (c *UpCommand) Run(ctx context.Context, m Migrator) error {
	return m.Up(ctx)
}

type DownCommand struct{}

func (c *DownCommand) Name() string        { return "down" }
func (c *DownCommand) Description() string { return "Roll back the most recent migration" }

func (c *DownCommand) Run(ctx context.Context, m Migrator) error {
	return m.Down(ctx)
}

type StatusCommand struct {
	out io.Writer
}

func (c *StatusCommand) Name() string        { return "status" }
func (c *StatusCommand) Description() string { return "Show applied and pending migrations" }

func (c *StatusCommand) Run(ctx context.Context, m Migrator) error {
	states, err := m.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range states {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(c.out, "%-6d %-40s %s\n", s.Version, s.Path, state)
	}
	return nil
}

type VersionCommand struct {
	out io.Writer
}

func (c *VersionCommand) Name() string        { return "version" }
func (c *VersionCommand) Description() string { return "Print the current schema version" }

func (c *VersionCommand) Run(ctx context.Context, m Migrator) error {
	v, err := m.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%d\n", v)
	return nil
}
