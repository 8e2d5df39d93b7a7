package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/config"
	"attendance-tracker/internal/repository/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api        api.API
	config     *config.Config
	employeeID string
	registry   *CommandRegistry
}

// GetDatabasePath returns the path to the SQLite database file
func GetDatabasePath() (string, error) {
	// Check for AT_DB environment variable
	if dbPath := os.Getenv("AT_DB"); dbPath != "" {
		return dbPath, nil
	}

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Create .at directory if it doesn't exist
	atDir := filepath.Join(homeDir, ".at")
	if err := os.MkdirAll(atDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create .at directory: %w", err)
	}

	// Return path to at.db in .at directory
	return filepath.Join(atDir, "at.db"), nil
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(api api.API) *App {
	app := &App{
		api: api,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// NewAppWithConfig creates a new CLI application instance with configuration
func NewAppWithConfig(api api.API, cfg *config.Config) *App {
	app := &App{
		api:    api,
		config: cfg,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// NewAppWithDefaultRepository creates a new CLI application instance with the default SQLite repository
// This maintains backward compatibility and is used for production
func NewAppWithDefaultRepository() (*App, error) {
	// Get database path
	dbPath, err := GetDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	// Initialize SQLite repository
	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Create API instance
	apiInstance := api.New(repo)

	app := &App{
		api: apiInstance,
	}
	app.registry = NewCommandRegistry(app)
	return app, nil
}

// SetEmployeeID fixes the employee all record commands act on
func (a *App) SetEmployeeID(id string) {
	a.employeeID = id
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(ctx, commandName, commandArgs)
}

// resolveEmployeeID returns the employee record commands act on, from the
// --employee flag or the AT_EMPLOYEE environment variable.
func (a *App) resolveEmployeeID() (string, error) {
	if a.employeeID != "" {
		return a.employeeID, nil
	}
	if id := os.Getenv("AT_EMPLOYEE"); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("no employee selected: use --employee or set AT_EMPLOYEE")
}

// placeholder returns the display text for missing values
func (a *App) placeholder() string {
	if a.config != nil && a.config.Display.Placeholder != "" {
		return a.config.Display.Placeholder
	}
	return "-"
}
