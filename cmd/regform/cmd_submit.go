package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-regform"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
	"github.com/goliatone/go-regform/pkg/validation"
)

var errRejected = errors.New("registration rejected")

func newSubmitCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a registration read from a YAML file",
		Long: `Feeds every value of the file through the same input, blur and submit
steps as the interactive form. Exits with an error when validation fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := validation.LoadRegistration(file)
			if err != nil {
				return err
			}

			cfg := a.cfg
			cfg.ResetDelay = -1
			ctrl, err := regform.NewController(cfg,
				regform.WithLogger(a.logger),
				regform.WithPresenter(tui.NewPresenter(cmd.OutOrStdout(), tui.WithColor(false))),
				regform.WithMetrics(a.metrics),
			)
			if err != nil {
				return err
			}
			defer ctrl.Close()

			values := reg.Values()
			for _, field := range model.RequiredFields {
				ctrl.HandleInput(field, values[field])
				ctrl.HandleBlur(field)
			}
			ctrl.SetTermsAccepted(reg.TermsAccepted)

			outcome, err := ctrl.Submit(cmd.Context())
			if err != nil {
				return err
			}
			if !outcome.Succeeded() {
				return fmt.Errorf("%w: %s", errRejected, strings.Join(outcome.Errors, ", "))
			}
			reportOutcome(cmd, outcome)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "registration values (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a registration file without submitting it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := validation.LoadRegistration(file)
			if err != nil {
				return err
			}
			v, err := validation.NewValidator()
			if err != nil {
				return err
			}
			issues, err := v.Check(reg.Formatted())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(issues) == 0 {
				fmt.Fprintln(out, "OK")
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintln(out, issue.String())
			}
			a.metrics.ObserveValidationFailure()
			return fmt.Errorf("%w: %d issue(s)", errRejected, len(issues))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "registration values (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
