package cli

import (
	"context"
	"fmt"
	"strings"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/errors"
)

// EmployeeCommand handles the employee subcommands
type EmployeeCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewEmployeeCommand creates a new employee command handler
func NewEmployeeCommand(app *App) *EmployeeCommand {
	return &EmployeeCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute dispatches the employee subcommands
func (c *EmployeeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "employee", "usage: at employee add|list|rename|role|delete")
	}

	subcommand := args[0]
	subArgs := args[1:]

	switch subcommand {
	case "add":
		return c.addEmployee(ctx, subArgs)
	case "list":
		return c.listEmployees(ctx)
	case "rename":
		return c.renameEmployee(ctx, subArgs)
	case "role":
		return c.changeRole(ctx, subArgs)
	case "delete":
		return c.deleteEmployee(ctx, subArgs)
	default:
		return errors.NewInvalidInputError("command", subcommand, "unknown employee subcommand")
	}
}

// addEmployee creates a new employee
func (c *EmployeeCommand) addEmployee(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "employee add", "usage: at employee add <name> [role]")
	}

	role := ""
	name := strings.Join(args, " ")
	if len(args) > 1 {
		last := args[len(args)-1]
		if last == "admin" || last == "member" {
			role = last
			name = strings.Join(args[:len(args)-1], " ")
		}
	}

	employee, err := c.api.AddEmployee(ctx, name, role)
	if err != nil {
		return c.errorHandler.Handle("add employee", err)
	}

	fmt.Printf("Added employee %s (%s)\n", employee.Name, employee.ID)
	return nil
}

// listEmployees displays all employees
func (c *EmployeeCommand) listEmployees(ctx context.Context) error {
	employees, err := c.api.ListEmployees(ctx)
	if err != nil {
		return c.errorHandler.Handle("list employees", err)
	}

	if len(employees) == 0 {
		fmt.Println("No employees found")
		return nil
	}

	for _, employee := range employees {
		fmt.Printf("%s  %-30s %s\n", employee.ID, employee.Name, employee.Role)
	}
	return nil
}

// renameEmployee changes an employee's name
func (c *EmployeeCommand) renameEmployee(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "employee rename", "usage: at employee rename <id> <name>")
	}

	id := args[0]
	name := strings.Join(args[1:], " ")
	employee, err := c.api.RenameEmployee(ctx, id, name)
	if err != nil {
		return c.errorHandler.Handle("rename employee", err)
	}

	fmt.Printf("Renamed employee to %s\n", employee.Name)
	return nil
}

// changeRole changes an employee's role
func (c *EmployeeCommand) changeRole(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "employee role", "usage: at employee role <id> <admin|member>")
	}

	employee, err := c.api.ChangeEmployeeRole(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("change employee role", err)
	}

	fmt.Printf("Employee %s is now %s\n", employee.Name, employee.Role)
	return nil
}

// deleteEmployee removes an employee and all of their records
func (c *EmployeeCommand) deleteEmployee(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "employee delete", "usage: at employee delete <id>")
	}

	if err := c.api.RemoveEmployee(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("delete employee", err)
	}

	fmt.Println("Deleted employee and all their records")
	return nil
}
