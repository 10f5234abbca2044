package cli

import (
	"github.com/spf13/cobra"

	"github.com/raphaelgruber/ytmcp-go/internal/tools"
)

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <url>",
		Short: "Print the canonical watch URL and video ID for a YouTube link",
		Long: `Normalize a YouTube link (watch, youtu.be, shorts, embed, live) to the
canonical watch URL and extract its video ID.

Examples:
  yt normalize https://youtu.be/dQw4w9WgXcQ
  yt normalize "https://www.youtube.com/shorts/dQw4w9WgXcQ" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.invoke(cmd, tools.ToolNormalizedURL, tools.NormalizedURLInput{URL: args[0]})
		},
	}
}
