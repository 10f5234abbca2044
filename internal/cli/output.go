package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/raphaelgruber/ytmcp-go/internal/tools"
)

// Theme holds the color scheme for terminal output.
type Theme struct {
	Name lipgloss.Color
	URL  lipgloss.Color
	Hint lipgloss.Color
}

var defaultTheme = Theme{
	Name: lipgloss.Color("#5FAFD7"), // light blue
	URL:  lipgloss.Color("#00D787"), // green
	Hint: lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) nameStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Name).Bold(true)
}

func (t Theme) urlStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.URL).Underline(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printEnvelope writes env as JSON, or styled when w is a terminal and
// forceJSON is false.
func printEnvelope(w io.Writer, env tools.Envelope, forceJSON bool) error {
	if forceJSON || !isTerminal(w) {
		data, err := env.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, renderEnvelope(env, defaultTheme))
	return err
}

// renderEnvelope formats the "url" value of env for humans.
func renderEnvelope(env tools.Envelope, theme Theme) string {
	switch v := env["url"].(type) {
	case string:
		return theme.urlStyle().Render(v)
	case []any:
		if len(v) == 2 && v[0] != nil && v[1] != nil {
			return fmt.Sprintf("%s\n%s %v",
				theme.urlStyle().Render(fmt.Sprint(v[0])),
				theme.hintStyle().Render("video id:"),
				v[1])
		}
		return theme.hintStyle().Render("no video id found")
	default:
		data, _ := env.JSON()
		return string(data)
	}
}
