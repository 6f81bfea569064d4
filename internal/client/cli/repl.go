package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	View(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Search(ctx context.Context) error
	FilterTag(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the blogview CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help           show available commands
//	  - list | l       list posts from the remote resource
//	  - view           show a single post (interactive id prompt)
//	  - search         full-text search over the loaded list
//	  - tag            filter the loaded list by tag
//	  - theme          toggle light/dark
//	  - exit | quit    leave the program
//
//	Not logged in:
//	  - register       create an account
//	  - login          authenticate
//
//	Logged in:
//	  - create         write a new post
//	  - edit           edit an existing post
//	  - rm | delete    delete a post
//	  - whoami         show the session user
//	  - logout         log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bv> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, view, create, edit, rm, search, tag, theme, whoami, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, view, search, tag, theme, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "view", "show":
			_ = a.View(ctx)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "rm", "delete":
			_ = a.Delete(ctx)

		case "search":
			_ = a.Search(ctx)

		case "tag":
			_ = a.FilterTag(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
