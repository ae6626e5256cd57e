package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/plateful/plateful/internal/api"
	"github.com/plateful/plateful/internal/filex"
	"github.com/plateful/plateful/internal/models"
)

// History browses the generated-recipe history one page at a time.
//
// Inside the browser:
//
//	n / p        next / previous page
//	show <id>    render a recipe
//	save <id>    download a recipe into the download directory
//	del <id>     delete an entry
//	q            back to the main prompt
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	octx, cancel := a.opCtx(ctx)
	err := a.history.Load(octx)
	cancel()
	if err != nil {
		return err
	}

	for {
		a.printHistoryPage()
		line, err := a.input.Prompt("history (n/p/show/save/del/q)> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var cmdErr error
		switch cmd {
		case "n", "next":
			cmdErr = a.withOpCtx(ctx, a.history.Next)
		case "p", "prev":
			cmdErr = a.withOpCtx(ctx, a.history.Prev)
		case "show":
			cmdErr = a.showRecipe(args)
		case "save":
			cmdErr = a.saveRecipe(ctx, args)
		case "del":
			cmdErr = func() error {
				id, err := a.parseID(args, "Entry id to delete: ")
				if err != nil {
					return err
				}
				octx, cancel := a.opCtx(ctx)
				defer cancel()
				return a.history.Delete(octx, id)
			}()
		case "q", "back":
			return nil
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(api.UserMessage(cmdErr))
		}
	}
}

// withOpCtx runs op under the configured request timeout.
func (a *App) withOpCtx(ctx context.Context, op func(context.Context) error) error {
	octx, cancel := a.opCtx(ctx)
	defer cancel()
	return op(octx)
}

func (a *App) printHistoryPage() {
	items := a.history.Items()
	if len(items) == 0 {
		printlnFn("No recipes in the history.")
		return
	}
	for _, entry := range items {
		title := entry.Title
		if title == "" {
			title = "(untitled)"
		}
		created := entry.CreatedAt
		if created != "" {
			created = "  " + created
		}
		printlnFn(fmt.Sprintf("%6d  %s%s", entry.ID, title, created))
	}
	printlnFn(fmt.Sprintf("page %d/%d (%d recipes)", a.history.Page(), a.history.TotalPages(), a.history.Total()))
}

func (a *App) findHistoryEntry(id int64) (models.RecipeHistoryEntry, bool) {
	for _, entry := range a.history.Items() {
		if entry.ID == id {
			return entry, true
		}
	}
	return models.RecipeHistoryEntry{}, false
}

func (a *App) showRecipe(args []string) error {
	id, err := a.parseID(args, "Entry id to show: ")
	if err != nil {
		return err
	}
	entry, ok := a.findHistoryEntry(id)
	if !ok {
		printlnFn("No entry with that id on this page.")
		return nil
	}
	if entry.Title != "" {
		printlnFn(entry.Title)
	}
	fmt.Fprint(a.out, a.render(entry.Content))
	return nil
}

func (a *App) saveRecipe(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "Entry id to save: ")
	if err != nil {
		return err
	}

	// derive a filename from the title in case the server sends none
	fallback := "recipe.txt"
	if entry, ok := a.findHistoryEntry(id); ok && entry.Title != "" {
		fallback = filex.SanitizeFilename(entry.Title+".txt", fallback)
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()
	d, err := a.client.DownloadRecipe(octx, id, fallback)
	if err != nil {
		return err
	}

	path, err := filex.SaveTo(a.downloadDir(), filex.SanitizeFilename(d.Filename, fallback), d.Data)
	if err != nil {
		return err
	}
	printlnFn("Saved to", path)
	return nil
}
