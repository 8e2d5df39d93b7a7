package cli

import (
	"context"

	"attendance-tracker/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register("start", NewStartCommand(app))
	registry.Register("pause", NewPauseCommand(app))
	registry.Register("resume", NewResumeCommand(app))
	registry.Register("end", NewEndCommand(app))
	registry.Register("status", NewStatusCommand(app))
	registry.Register("records", NewRecordsCommand(app))
	registry.Register("add", NewAddCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("export", NewExportCommand(app))
	registry.Register("summary", NewSummaryCommand(app))
	registry.Register("employee", NewEmployeeCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: at start|pause|resume|end|status or at records or at add <date> <start> [end] or at edit <date> [start=..] [end=..] or at delete <date> or at export format=csv [all] or at summary [YYYY-MM] or at employee add|list|rename|role|delete"
}
