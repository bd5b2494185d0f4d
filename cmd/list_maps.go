package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toyinlola/siteshield/pkg/commands"
	"github.com/toyinlola/siteshield/pkg/interfaces"
)

func newListMapsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   string(interfaces.CommandListMaps),
		Short: "List all Site Shield maps and their acknowledgment status",
		Long: `List every Site Shield map on the account with its status.

A map shows "UPDATES PENDING" when a proposed CIDR set is waiting to be
acknowledged and "Up-To-Date" otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(format)
			if err != nil {
				return err
			}
			return a.handler(cmd).Dispatch(cmd.Context(), commands.Request{
				Command: interfaces.CommandListMaps,
				Format:  f,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (table|json|yaml|markdown)")
	return cmd
}
