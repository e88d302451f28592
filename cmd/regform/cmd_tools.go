package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-regform/pkg/format"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
	"github.com/goliatone/go-regform/pkg/strength"
)

func newStrengthCmd() *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "strength <password>",
		Short: "Score a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := strength.Score(args[0])
			tui.NewPresenter(cmd.OutOrStdout(), tui.WithColor(color)).ShowStrength(a)
			if !a.Acceptable() {
				fmt.Fprintf(cmd.OutOrStdout(), "Below the minimum of %d.\n", strength.MinAcceptable)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&color, "color", true, "colour the strength bar")
	return cmd
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "format cnic|mobile <raw>",
		Short:     "Format a CNIC or mobile number",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"cnic", "mobile"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var fn format.Formatter
			switch args[0] {
			case "cnic":
				fn = format.CNIC
			case "mobile":
				fn = format.MobileNumber
			default:
				return fmt.Errorf("unknown format %q, want cnic or mobile", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), fn(args[1]))
			return nil
		},
	}
}
