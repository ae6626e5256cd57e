package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/peterh/liner"

	"github.com/plateful/plateful/internal/api"
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
	Reset(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Chat(ctx context.Context) error
	NewChat(ctx context.Context) error
	Conversations(ctx context.Context) error
	OpenConversation(ctx context.Context) error
	RenameConversation(ctx context.Context) error
	DeleteConversation(ctx context.Context) error
	History(ctx context.Context) error
	Gallery(ctx context.Context) error
	Recipe(ctx context.Context) error
	Image(ctx context.Context) error
}

// runREPL starts the read-eval-print loop for the plateful CLI.
//
// It reads a line via readLine, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on input EOF or when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - reset          reset a forgotten password
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - chat           talk to the food assistant (continues the active conversation)
//	  - new            start a fresh conversation
//	  - (c)onversations, open, rename, delchat
//	  - (h)istory      browse generated recipes
//	  - (g)allery      browse generated images
//	  - recipe | image generate from ingredients
//	  - whoami, logout, exit
//
// Errors returned by command handlers are rendered through api.UserMessage,
// so the user always sees the friendly variant.
func runREPL(ctx context.Context, a execIface, statusFn func() string, readLine func(prompt string) (string, error)) {
	for {
		line, err := readLine(fmt.Sprintf("plateful %s> ", statusFn()))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: chat, new, (c)onversations, open, rename, delchat,")
				printlnFn("  (h)istory, (g)allery, recipe, image, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, reset, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "chat":
			cmdErr = a.Chat(ctx)

		case "new":
			cmdErr = a.NewChat(ctx)

		case "c", "conversations":
			cmdErr = a.Conversations(ctx)

		case "open":
			cmdErr = a.OpenConversation(ctx)

		case "rename":
			cmdErr = a.RenameConversation(ctx)

		case "delchat":
			cmdErr = a.DeleteConversation(ctx)

		case "h", "history":
			cmdErr = a.History(ctx)

		case "g", "gallery":
			cmdErr = a.Gallery(ctx)

		case "recipe":
			cmdErr = a.Recipe(ctx)

		case "image":
			cmdErr = a.Image(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			if errors.Is(cmdErr, liner.ErrPromptAborted) {
				continue
			}
			printlnFn(api.UserMessage(cmdErr))
		}
	}
}
