package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isOnboarded() bool
	Setup(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Photo(ctx context.Context) error
	AddNote(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Clear(ctx context.Context) error
}

const (
	helpOnboarding = "Available commands: help, setup, exit"
	helpMain       = "Available commands: help, profile, edit, photo, addnote, (l)ist, search <query>, clear, exit"
)

// runREPL starts a simple read–eval–print loop for the notekeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The rest of the line is passed to commands
// that take an argument (search). The loop exits on EOF or when the user
// types "exit" or "quit".
//
// promptFn returns the prompt to print before each line; an empty prompt
// prints nothing.
//
// Until a profile exists only help, setup and exit are accepted. Errors
// returned by command handlers are ignored here; handlers report to the user
// and log on their own.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if p := promptFn(); p != "" {
			fmt.Fprint(w, p)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
		case "help":
			if a.isOnboarded() {
				fmt.Fprintln(w, helpMain)
			} else {
				fmt.Fprintln(w, helpOnboarding)
			}

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		case "setup":
			if a.isOnboarded() {
				fmt.Fprintln(w, "A profile already exists. Use 'edit' to change it.")
				break
			}
			_ = a.Setup(ctx)

		case "profile", "edit", "photo", "addnote", "l", "list", "search", "clear":
			if !a.isOnboarded() {
				fmt.Fprintln(w, "Please run 'setup' first.")
				break
			}
			dispatch(ctx, a, cmd, arg, w)

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd, arg string, w io.Writer) {
	switch cmd {
	case "profile":
		_ = a.Profile(ctx)
	case "edit":
		_ = a.Edit(ctx)
	case "photo":
		_ = a.Photo(ctx)
	case "addnote":
		_ = a.AddNote(ctx)
	case "l", "list":
		_ = a.List(ctx)
	case "search":
		if arg == "" {
			fmt.Fprintln(w, "Usage: search <query>")
			return
		}
		_ = a.Search(ctx, arg)
	case "clear":
		_ = a.Clear(ctx)
	}
}
