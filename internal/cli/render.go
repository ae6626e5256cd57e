package cli

import "github.com/charmbracelet/glamour"

// newMarkdownRenderer builds the terminal renderer for assistant replies and
// generated recipes, which arrive as markdown. Rendering is best-effort:
// when the renderer cannot be constructed or chokes on the input, the raw
// text is shown instead.
func newMarkdownRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(s string) string { return s }
	}
	return func(s string) string {
		out, err := r.Render(s)
		if err != nil {
			return s
		}
		return out
	}
}
