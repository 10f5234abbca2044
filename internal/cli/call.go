package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Invoke a tool by name with JSON arguments",
		Long: `Invoke any registered tool with a JSON object of arguments, exactly as an
MCP client would.

Examples:
  yt call get_watch_url '{"video_id":"dQw4w9WgXcQ","start_time":0}'
  yt call get_normalized_url '{"url":"youtu.be/dQw4w9WgXcQ"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw json.RawMessage
			if len(args) == 2 {
				raw = json.RawMessage(args[1])
				if !json.Valid(raw) {
					return fmt.Errorf("arguments are not valid JSON: %s", args[1])
				}
			}
			return a.invokeRaw(cmd, args[0], raw)
		},
	}
}
