package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	FilterCategory(ctx context.Context, category string) error
	Search(ctx context.Context, term string) error
	Show(ctx context.Context, arg string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	Favorite(ctx context.Context, arg string) error
	Copy(ctx context.Context, arg string) error
	Counts(ctx context.Context) error
	Generate(ctx context.Context, args []string) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lockbox %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, filter <category>, search [term], show <id>, add, edit <id>, delete <id>, fav <id>, copy <id>, counts, gen [length] [classes], logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <all|favorites|banking|social|work|other>")
				continue
			}
			_ = a.FilterCategory(ctx, args[0])

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <id>")
				continue
			}
			_ = a.Favorite(ctx, args[0])

		case "copy":
			if len(args) == 0 {
				printlnFn("Usage: copy <id>")
				continue
			}
			_ = a.Copy(ctx, args[0])

		case "counts":
			_ = a.Counts(ctx)

		case "gen":
			_ = a.Generate(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
