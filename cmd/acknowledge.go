package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toyinlola/siteshield/pkg/commands"
	"github.com/toyinlola/siteshield/pkg/interfaces"
	"github.com/toyinlola/siteshield/pkg/selector"
)

func newAcknowledgeCmd(a *app) *cobra.Command {
	var criteria selector.Criteria

	cmd := &cobra.Command{
		Use:   string(interfaces.CommandAcknowledge),
		Short: "Acknowledge a pending Site Shield map update",
		Long: `Accept the proposed CIDR set of a map, selected with --map-name or
--map-id, as its new current set.

Nothing is sent when no map on the account has updates pending.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handler(cmd).Dispatch(cmd.Context(), commands.Request{
				Command:  interfaces.CommandAcknowledge,
				Criteria: criteria,
			})
		},
	}

	selectorFlags(cmd.Flags(), &criteria)
	return cmd
}
