package tui

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/model"
)

// Session walks a user through the registration form in a terminal. Each
// answer is fed to the controller as an input event followed by a blur, so
// formatting and validation behave as they would in a browser form.
type Session struct {
	ctrl     *form.Controller
	driver   PromptDriver
	attempts int
	logger   *zap.Logger
}

// NewSession binds a session to ctrl. The survey driver is used unless
// WithPromptDriver says otherwise.
func NewSession(ctrl *form.Controller, options ...Option) (*Session, error) {
	if ctrl == nil {
		return nil, errors.New("tui: form controller is required")
	}
	s := &Session{
		ctrl:     ctrl,
		attempts: DefaultAttempts,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run prompts every field, asks for the terms and submits. A rejected form
// can be fixed and resubmitted; declining returns the failed outcome with
// ErrDeclined.
func (s *Session) Run(ctx context.Context) (form.Outcome, error) {
	if err := s.driver.Info(ctx, "Registration"); err != nil {
		return form.Outcome{}, err
	}
	for _, field := range model.RequiredFields {
		if err := s.askField(ctx, field); err != nil {
			return form.Outcome{}, err
		}
	}
	if err := s.askTerms(ctx); err != nil {
		return form.Outcome{}, err
	}

	for {
		outcome, err := s.ctrl.Submit(ctx)
		if err != nil {
			return outcome, err
		}
		if outcome.Succeeded() {
			s.logger.Debug("session submitted", zap.String("path", string(outcome.Result.Path)))
			return outcome, nil
		}

		again, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Fix the highlighted fields and submit again?",
			Default: true,
		})
		if err != nil {
			return outcome, err
		}
		if !again {
			return outcome, ErrDeclined
		}
		if err := s.fix(ctx); err != nil {
			return outcome, err
		}
	}
}

func (s *Session) fix(ctx context.Context) error {
	for _, field := range model.RequiredFields {
		if s.ctrl.Status(field) != model.StatusInvalid {
			continue
		}
		if err := s.askField(ctx, field); err != nil {
			return err
		}
	}
	if s.ctrl.Status(model.FieldTerms) == model.StatusInvalid {
		return s.askTerms(ctx)
	}
	return nil
}

func (s *Session) askField(ctx context.Context, field model.FieldName) error {
	for attempt := 0; attempt < s.attempts; attempt++ {
		cfg := InputConfig{
			Message: field.Label() + ":",
			Help:    Hint(field),
		}
		var (
			answer string
			err    error
		)
		if field.Secret() {
			answer, err = s.driver.Password(ctx, cfg)
		} else {
			cfg.Default = s.ctrl.Value(field)
			answer, err = s.driver.Input(ctx, cfg)
		}
		if err != nil {
			return fmt.Errorf("tui: prompt %s: %w", field, err)
		}

		s.ctrl.HandleInput(field, answer)
		if s.ctrl.HandleBlur(field) {
			return nil
		}
	}
	s.logger.Debug("field left invalid", zap.String("field", field.String()))
	return nil
}

func (s *Session) askTerms(ctx context.Context) error {
	accepted, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: model.FieldTerms.Label(),
	})
	if err != nil {
		return fmt.Errorf("tui: prompt terms: %w", err)
	}
	s.ctrl.SetTermsAccepted(accepted)
	return nil
}
