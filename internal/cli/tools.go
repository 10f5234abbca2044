package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styled := !a.jsonOutput && isTerminal(out)
			for _, t := range a.reg.Tools() {
				name := t.Name
				if styled {
					name = defaultTheme.nameStyle().Render(name)
				}
				fmt.Fprintf(out, "%s\t%s\n", name, t.Description)
			}
			return nil
		},
	}
}
