package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-regform"
	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
	"github.com/goliatone/go-regform/pkg/submit"
)

func newRegisterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Fill in the registration form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presenter := tui.NewPresenter(out)

			// The process exits right after submitting, so the delayed
			// reset has nothing to clear.
			cfg := a.cfg
			cfg.ResetDelay = -1

			ctrl, err := regform.NewController(cfg,
				regform.WithLogger(a.logger),
				regform.WithPresenter(presenter),
				regform.WithMetrics(a.metrics),
			)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			session, err := tui.NewSession(ctrl,
				tui.WithPromptDriver(tui.NewSurveyDriver(out)),
				tui.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			outcome, err := session.Run(cmd.Context())
			switch {
			case errors.Is(err, tui.ErrAborted):
				fmt.Fprintln(out, "Registration cancelled.")
				return nil
			case err != nil:
				return err
			}
			reportOutcome(cmd, outcome)
			return nil
		},
	}
}

func reportOutcome(cmd *cobra.Command, outcome form.Outcome) {
	if !outcome.Succeeded() {
		return
	}
	via := "endpoint"
	if outcome.Result.Path == submit.PathFallback {
		via = "fallback"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Submitted via %s (submission %s)\n", via, outcome.Payload.ID())
}
