package cli

import (
	"github.com/spf13/cobra"

	"github.com/raphaelgruber/ytmcp-go/internal/tools"
)

func newThumbnailCmd(a *app) *cobra.Command {
	var quality string

	cmd := &cobra.Command{
		Use:   "thumbnail <video-id>",
		Short: "Print the thumbnail URL for a video ID",
		Long: `Print the thumbnail image URL for a video ID.

Qualities: default, mqdefault, hqdefault, sddefault, maxresdefault.

Examples:
  yt thumbnail dQw4w9WgXcQ
  yt thumbnail dQw4w9WgXcQ --quality hqdefault`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.invoke(cmd, tools.ToolThumbnailURL, tools.ThumbnailURLInput{
				VideoID: args[0],
				Quality: quality,
			})
		},
	}

	cmd.Flags().StringVarP(&quality, "quality", "q", "", "thumbnail quality (default from config)")
	return cmd
}
