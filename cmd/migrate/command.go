package main

import (
	"context"
	"fmt"
	"sort"
)

// Command is a single migrate subcommand
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, m Migrator) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Usage lists the registered commands in name order.
func (r *Registry) Usage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	out := "Usage: migrate <command>\nCommands:\n"
	for _, name := range names {
		out += fmt.Sprintf("  %-8s %s\n", name, r.commands[name].Description())
	}
	return out
}
