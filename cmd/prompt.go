package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/mattn/go-isatty"
)

var errNotInteractive = errors.New("stdin is not a terminal, pass the missing values as flags")

func ensureInteractive() error {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return errNotInteractive
}

func promptCredentials(username, password *string, defaultUsername string) error {
	if err := ensureInteractive(); err != nil {
		return err
	}

	if *username == "" {
		*username = defaultUsername
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(username).
				Validate(nonEmpty("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(nonEmpty("password")),
		),
	).WithShowHelp(false)

	return form.Run()
}

func promptStatus(status *string) error {
	if err := ensureInteractive(); err != nil {
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select status").
				Options(huh.NewOptions(domain.StatusValues()...)...).
				Value(status),
		),
	).WithShowHelp(false)

	return form.Run()
}

func promptTime(value *string, placeholder string) error {
	if err := ensureInteractive(); err != nil {
		return err
	}

	if *value == "" {
		*value = placeholder
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time (HH:MM)").
				Placeholder(placeholder).
				Value(value).
				Validate(validClockTime),
		),
	).WithShowHelp(false)

	return form.Run()
}

func promptConfig(apiURL, username *string) error {
	if err := ensureInteractive(); err != nil {
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API URL").
				Value(apiURL).
				Validate(domain.ValidateBaseURL),
			huh.NewInput().
				Title("Default username").
				Value(username),
		),
	).WithShowHelp(false)

	return form.Run()
}

func nonEmpty(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

func validClockTime(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return errors.New("expected HH:MM")
	}
	return nil
}
