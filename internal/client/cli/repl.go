package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
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
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	Feed(ctx context.Context, args []string) error
	Post(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Uncomment(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Bio(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, whoami, exit"
	helpLoggedIn  = "Available commands: feed [-c], post [text], edit <id> [text], delete <id>, like <id>, " +
		"comments <id>, comment <id> [text], uncomment <id> <comment-id>, profile [user-id], bio [text], " +
		"whoami, refresh, logout, exit"
)

// commands that work without a session
var publicCommands = map[string]bool{
	"help": true, "register": true, "login": true, "whoami": true, "exit": true, "quit": true,
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The prompt shows statusFn(). Commands other than the public ones need a
// session; without one the user is asked to log in. Handler errors are
// printed through describeError and never stop the loop. The loop exits on
// EOF, on "exit"/"quit" or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("social%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !publicCommands[cmd] && !a.isLoggedIn() {
			if _, known := dispatch(cmd); known {
				printlnFn("Please login first")
				continue
			}
		}

		if cmd == "help" {
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		}
		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		run, ok := dispatch(cmd)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if msg := describeError(run(ctx, a, args)); msg != "" {
			printlnFn(msg)
		}
	}
}

type handler func(ctx context.Context, a execIface, args []string) error

func noArgs(fn func(execIface, context.Context) error) handler {
	return func(ctx context.Context, a execIface, _ []string) error { return fn(a, ctx) }
}

func withArgs(fn func(execIface, context.Context, []string) error) handler {
	return func(ctx context.Context, a execIface, args []string) error { return fn(a, ctx, args) }
}

var handlers = map[string]handler{
	"register":  noArgs(execIface.Register),
	"login":     noArgs(execIface.Login),
	"logout":    noArgs(execIface.Logout),
	"whoami":    noArgs(execIface.WhoAmI),
	"refresh":   noArgs(execIface.Refresh),
	"feed":      withArgs(execIface.Feed),
	"post":      withArgs(execIface.Post),
	"edit":      withArgs(execIface.Edit),
	"delete":    withArgs(execIface.Delete),
	"like":      withArgs(execIface.Like),
	"comments":  withArgs(execIface.Comments),
	"comment":   withArgs(execIface.Comment),
	"uncomment": withArgs(execIface.Uncomment),
	"profile":   withArgs(execIface.Profile),
	"bio":       withArgs(execIface.Bio),
}

func dispatch(cmd string) (handler, bool) {
	h, ok := handlers[cmd]
	return h, ok
}
