package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	RegisterWorker(ctx context.Context) error
	RegisterCareHome(ctx context.Context) error
	Verify(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Stats(ctx context.Context) error
	Qualifications(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a command per line and dispatches to a. Unknown commands
// are reported back. The loop ends on scanner EOF or "exit"/"quit".
// Handler errors are ignored here; handlers print their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	fmt.Fprintln(w, "CareConnect client (type 'help' for commands)")

	for {
		fmt.Fprintf(w, "cc (%s)> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: whoami, verify, stats, qualifications, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, register, register-home, verify, stats, qualifications, exit")
			}
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.RegisterWorker(ctx)
		case "register-home":
			_ = a.RegisterCareHome(ctx)
		case "verify":
			_ = a.Verify(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "stats":
			_ = a.Stats(ctx)
		case "qualifications":
			_ = a.Qualifications(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", parts[0])
		}
	}
}
