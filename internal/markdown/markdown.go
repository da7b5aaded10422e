// Package markdown renders help text for the terminal.
package markdown

import (
	"strings"
	"sync"

	internalstrings "github.com/amonks/judo/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output at the given width.
// The input is returned unchanged if rendering fails.
func Render(width int, input string) string {
	value := internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(input))
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if width < 20 {
		width = 80
	}

	rendered := safeRender(markdownRenderer(width), value)
	return internalstrings.TrimTrailingNewlines(rendered) + "\n"
}

func safeRender(r renderer, value string) (out string) {
	if r == nil {
		return value
	}
	defer func() {
		if recover() != nil {
			out = value
		}
	}()
	formatted, err := r.Render(value)
	if err != nil {
		return value
	}
	return formatted
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}
