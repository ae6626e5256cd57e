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
)

// Gallery browses the generated food images one page at a time.
//
// Inside the browser:
//
//	n / p        next / previous page
//	save <id>    download an image into the download directory
//	del <id>     delete an image
//	q            back to the main prompt
func (a *App) Gallery(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	octx, cancel := a.opCtx(ctx)
	err := a.gallery.Load(octx)
	cancel()
	if err != nil {
		return err
	}

	for {
		a.printGalleryPage()
		line, err := a.input.Prompt("gallery (n/p/save/del/q)> ")
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
			cmdErr = a.withOpCtx(ctx, a.gallery.Next)
		case "p", "prev":
			cmdErr = a.withOpCtx(ctx, a.gallery.Prev)
		case "save":
			cmdErr = a.saveImage(ctx, args)
		case "del":
			cmdErr = func() error {
				id, err := a.parseID(args, "Image id to delete: ")
				if err != nil {
					return err
				}
				octx, cancel := a.opCtx(ctx)
				defer cancel()
				return a.gallery.Delete(octx, id)
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

func (a *App) printGalleryPage() {
	items := a.gallery.Items()
	if len(items) == 0 {
		printlnFn("No images in the gallery.")
		return
	}
	for _, img := range items {
		label := img.Alt
		if label == "" {
			label = img.Filename
		}
		if label == "" {
			label = img.URL
		}
		printlnFn(fmt.Sprintf("%6d  %s", img.ID, label))
	}
	printlnFn(fmt.Sprintf("page %d/%d (%d images)", a.gallery.Page(), a.gallery.TotalPages(), a.gallery.Total()))
}

func (a *App) saveImage(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "Image id to save: ")
	if err != nil {
		return err
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()
	d, err := a.client.DownloadImage(octx, id)
	if err != nil {
		return err
	}

	path, err := filex.SaveTo(a.downloadDir(), filex.SanitizeFilename(d.Filename, fmt.Sprintf("image-%d.png", id)), d.Data)
	if err != nil {
		return err
	}
	printlnFn("Saved to", path)
	return nil
}
