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
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Google(ctx context.Context) error
	Forgot(ctx context.Context) error
	Blogs(ctx context.Context, category, search string) error
	Show(ctx context.Context, id string) error
	MyPosts(ctx context.Context) error
	Post(ctx context.Context) error
	Publish(ctx context.Context) error
	Update(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the BlogNest CLI.
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
//	Not logged in:
//	  - help                       — show available commands
//	  - login | signup | google    — authenticate
//	  - forgot                     — reset a forgotten password
//	  - blogs [category] [search]  — browse the public feed
//	  - show <id>                  — show a single blog
//	  - exit | quit                — leave the program
//
//	Logged in additionally:
//	  - myposts                    — list own posts
//	  - post                       — create a quick text post
//	  - publish                    — create a full blog with image
//	  - update <id>                — edit a post
//	  - delete <id>                — delete a post (with confirmation)
//	  - whoami                     — show the signed-in identity
//	  - logout                     — sign out
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bn> %s > ", statusFn()))
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
			printlnFn("Available commands: login, signup, google, forgot, blogs [category] [search], show <id>, exit")
			if a.isLoggedIn() {
				printlnFn("Signed in: myposts, post, publish, update <id>, delete <id>, whoami, logout")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "google":
			_ = a.Google(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "blogs":
			category, search := "", ""
			if len(args) > 0 {
				category = args[0]
			}
			if len(args) > 1 {
				search = strings.Join(args[1:], " ")
			}
			_ = a.Blogs(ctx, category, search)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "myposts":
			_ = a.MyPosts(ctx)

		case "post":
			_ = a.Post(ctx)

		case "publish":
			_ = a.Publish(ctx)

		case "update":
			if len(args) == 0 {
				printlnFn("Usage: update <id>")
				continue
			}
			_ = a.Update(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
