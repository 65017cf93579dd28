package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests substitute a stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	NetWorth(ctx context.Context) error
	Portfolio(ctx context.Context) error
	Whoami(ctx context.Context) error
	Theme(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line at a time, parses the first token as the command and
// dispatches it. Handlers report their own errors; the loop only cares about
// EOF and "exit". It exits on scanner EOF, ctx cancellation checks between
// commands, or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, w io.Writer) {
	fmt.Fprintln(w, "Welcome (type 'help' for commands)")

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(w, "fin> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(w, "Available commands: networth, portfolio, whoami, theme, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, register, whoami, theme, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "networth":
			_ = a.NetWorth(ctx)

		case "portfolio":
			_ = a.Portfolio(ctx)

		case "whoami", "profile":
			_ = a.Whoami(ctx)

		case "theme":
			_ = a.Theme(ctx)

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
