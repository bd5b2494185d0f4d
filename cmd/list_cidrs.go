package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toyinlola/siteshield/pkg/commands"
	"github.com/toyinlola/siteshield/pkg/interfaces"
	"github.com/toyinlola/siteshield/pkg/selector"
)

// selectorFlags registers --map-name and --map-id on fs.
func selectorFlags(fs *pflag.FlagSet, c *selector.Criteria) {
	fs.StringVar(&c.Name, "map-name", "", "map name (case-insensitive)")
	fs.StringVar(&c.ID, "map-id", "", "map ID")
}

func newListCIDRsCmd(a *app) *cobra.Command {
	var (
		criteria selector.Criteria
		asJSON   bool
		format   string
	)

	cmd := &cobra.Command{
		Use:   string(interfaces.CommandListCIDRs),
		Short: "List the CIDR blocks of a Site Shield map",
		Long: `List the CIDR blocks of one map, selected with --map-name or --map-id.

For a map with updates pending, the proposed CIDRs are shown; otherwise the
current ones. With --json the full map record is printed instead.`,
		Example: `  siteshield list-cidrs --map-name my-map
  siteshield list-cidrs --map-id 1234 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				format = string(interfaces.FormatJSON)
			}
			f, err := a.format(format)
			if err != nil {
				return err
			}
			return a.handler(cmd).Dispatch(cmd.Context(), commands.Request{
				Command:  interfaces.CommandListCIDRs,
				Criteria: criteria,
				Format:   f,
			})
		},
	}

	selectorFlags(cmd.Flags(), &criteria)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full map record as JSON")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (table|json|yaml|markdown)")
	return cmd
}
