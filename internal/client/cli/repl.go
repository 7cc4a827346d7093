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
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Verify(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Update(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Watch(ctx context.Context, args []string) error
	Unwatch(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
	Ping(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the Instabids CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the remaining tokens to it. The loop exits on EOF, when ctx is done,
// or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - verify         — confirm an email address
//	  - login          — authenticate
//	  - watch, unwatch, theme, ping, reset, exit
//
//	Logged in, additionally:
//	  - whoami         — show the current user
//	  - update [f=v..] — change profile fields
//	  - avatar <file>  — upload a new avatar
//	  - logout         — log out
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("ib> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
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
				printlnFn("Available commands: whoami, update, avatar, watch, unwatch, theme, ping, logout, reset, exit")
			} else {
				printlnFn("Available commands: signup, verify, login, watch, unwatch, theme, ping, reset, exit")
			}

		case "signup", "register":
			cmdErr = a.Signup(ctx)

		case "verify":
			cmdErr = a.Verify(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami", "profile":
			cmdErr = a.Whoami(ctx)

		case "update":
			cmdErr = a.Update(ctx, args)

		case "avatar":
			cmdErr = a.Avatar(ctx, args)

		case "watch":
			cmdErr = a.Watch(ctx, args)

		case "unwatch":
			cmdErr = a.Unwatch(ctx, args)

		case "theme":
			cmdErr = a.Theme(ctx, args)

		case "ping":
			cmdErr = a.Ping(ctx)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
