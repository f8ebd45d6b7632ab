package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context, p models.DevicePatch) error
	Edit(ctx context.Context, id string, p models.DevicePatch) error
	Delete(ctx context.Context, id string, yes bool) error
}

// runREPL starts a simple read–eval–print loop for the devprofiler shell.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
// Prompts issued by the commands read from the same reader.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Signed out:
//	  - help             show available commands
//	  - register         create an account
//	  - login            authenticate
//	  - exit | quit      leave the program
//
//	Signed in:
//	  - help             show available commands
//	  - (l)ist           list devices
//	  - add              add a device
//	  - edit <id>        edit a device
//	  - delete <id>      delete a device, after confirmation
//	  - whoami           show the signed-in account
//	  - logout           log out
//	  - exit | quit      leave the program
//
// Errors returned by command handlers are not fatal; results have already
// been shown and anything else is printed before the next prompt.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "dp %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: (l)ist, add, edit <id>, delete <id>, whoami, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "add":
			cmdErr = a.Add(ctx, models.DevicePatch{})

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: edit <id>")
				continue
			}
			cmdErr = a.Edit(ctx, args[0], models.DevicePatch{})

		case "delete", "rm":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: delete <id>")
				continue
			}
			cmdErr = a.Delete(ctx, args[0], false)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		var re *ResultError
		if cmdErr != nil && !errors.As(cmdErr, &re) {
			fmt.Fprintln(out, "Error:", cmdErr)
		}
	}
}

// Shell runs the interactive REPL until the user exits.
func (a *App) Shell(ctx context.Context) {
	a.notify.Info("Welcome to devprofiler (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
}
