package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the settings and page manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			out := cmd.OutOrStdout()
			m := sess.manifest
			fmt.Fprintf(out, "manifest %s: ok\n", manifestName(sess.settings.Manifest))
			fmt.Fprintf(out, "  sections: %d (nav: %d)\n", len(m.Sections), len(m.Nav))
			fmt.Fprintf(out, "  gallery: %d images\n", len(m.Gallery))
			fmt.Fprintf(out, "  reviews: %d\n", len(m.Reviews))
			fmt.Fprintf(out, "settings: ok (breakpoint %d, crossfade %s)\n",
				sess.settings.Breakpoint, sess.settings.CrossfadeInterval)
			sess.log.Info("check passed")
			return nil
		},
	}

	return cmd
}
