package cli

import (
	"github.com/spf13/cobra"

	"github.com/raphaelgruber/ytmcp-go/internal/tools"
	"github.com/raphaelgruber/ytmcp-go/internal/youtube"
)

func newWatchCmd(a *app) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "watch <video-id>",
		Short: "Print the watch URL for a video ID",
		Long: `Print the canonical watch URL for a video ID.

--start takes seconds or a duration string. --start 0 still adds t=0s.

Examples:
  yt watch dQw4w9WgXcQ
  yt watch dQw4w9WgXcQ --start 90
  yt watch dQw4w9WgXcQ --start 1h2m3s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := tools.WatchURLInput{VideoID: args[0]}
			if cmd.Flags().Changed("start") {
				input.StartTime = youtube.ParseStartTime(start)
			}
			return a.invoke(cmd, tools.ToolWatchURL, input)
		},
	}

	cmd.Flags().StringVarP(&start, "start", "t", "", "start time in seconds or as 1h2m3s")
	return cmd
}
