package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/plateful/plateful/internal/api"
	"github.com/plateful/plateful/internal/models"
	"github.com/plateful/plateful/internal/services"
)

// Chat enters the conversation loop. Plain lines go to the assistant;
// /quote <n> cites an earlier message, /back leaves the loop. The
// conversation continues where the session left off, or starts fresh when
// none is active.
func (a *App) Chat(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	a.printTranscript()
	printlnFn("Chat mode: type a message, /quote <n> to cite message n, /back to leave.")

	pendingQuote := ""
	for {
		line, err := a.input.Prompt("you> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		a.input.AppendHistory(line)

		switch {
		case trimmed == "/back":
			return nil

		case strings.HasPrefix(trimmed, "/quote"):
			pendingQuote = a.quoteMessage(strings.TrimSpace(strings.TrimPrefix(trimmed, "/quote")))

		case strings.HasPrefix(trimmed, "/"):
			printlnFn("Unknown chat command:", trimmed)

		default:
			text := trimmed
			if pendingQuote != "" {
				text = pendingQuote + "\n\n" + trimmed
				pendingQuote = ""
			}
			a.sendChatMessage(ctx, text)
		}
	}
}

// NewChat discards the active conversation and enters the chat loop.
func (a *App) NewChat(ctx context.Context) error {
	a.chat.Reset()
	return a.Chat(ctx)
}

func (a *App) sendChatMessage(ctx context.Context, text string) {
	octx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.chat.Send(octx, text); err != nil {
		// only a concurrent send ends up here; failures land in the transcript
		printlnFn(api.UserMessage(err))
		return
	}
	msgs := a.chat.Messages()
	if len(msgs) > 0 && msgs[len(msgs)-1].Role == models.RoleAssistant {
		fmt.Fprint(a.out, a.render(msgs[len(msgs)-1].Content))
	}
}

// quoteMessage resolves the 1-based transcript index and returns the quoted
// block that will precede the next message. The block is echoed so the user
// sees what will be sent.
func (a *App) quoteMessage(arg string) string {
	msgs := a.chat.Messages()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(msgs) {
		printlnFn("Usage: /quote <n>  (1 to", len(msgs), "right now)")
		return ""
	}
	quoted := services.Quote(msgs[n-1].Content)
	printlnFn(quoted)
	printlnFn("(the quote will be prepended to your next message)")
	return quoted
}

func (a *App) printTranscript() {
	msgs := a.chat.Messages()
	if len(msgs) == 0 {
		return
	}
	for i, msg := range msgs {
		if msg.Role == models.RoleAssistant {
			fmt.Fprintf(a.out, "%3d assistant:\n", i+1)
			fmt.Fprint(a.out, a.render(msg.Content))
		} else {
			fmt.Fprintf(a.out, "%3d you: %s\n", i+1, msg.Content)
		}
	}
}
