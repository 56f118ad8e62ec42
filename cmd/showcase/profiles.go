package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showcase/internal/page"
)

func newProfilesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Print the entrance animation profiles for both device classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, flags)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "breakpoint: %d units (%d columns)\n\n",
				settings.Breakpoint, settings.Breakpoint/settings.CellWidth)
			return renderProfiles(cmd)
		},
	}

	return cmd
}

func renderProfiles(cmd *cobra.Command) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "DEVICE\tKIND\tDURATION\tDISPLACEMENT\tSTAGGER\tDELAY\tEASING")
	for _, device := range []page.DeviceClass{page.Desktop, page.Mobile} {
		for _, kind := range page.AnimationKinds {
			p := page.ProfileFor(device, kind)
			fmt.Fprintf(writer, "%s\t%s\t%s\t%g\t%s\t%s\t%s\n",
				device, kind, p.Duration, p.Displacement, p.Stagger, p.Delay, p.Easing.Name)
		}
	}

	return writer.Flush()
}
