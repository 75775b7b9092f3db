package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// minPasswordLength mirrors the server's registration rule so bad input is
// caught before a round trip.
const minPasswordLength = 6

const (
	promptYes = "Yes"
	promptNo  = "No"
)

// passwordPrompt asks for a masked password. The flag value wins when set.
func passwordPrompt(label, flagValue string, validate bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
	}
	if validate {
		prompt.Validate = validatePassword
	}

	password, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return password, nil
}

func validatePassword(s string) error {
	if len([]rune(s)) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

// textPrompt asks for a line of text. The flag value wins when set.
func textPrompt(label, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if s == "" {
				return errors.New("value is required")
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}
	return value, nil
}

// confirm asks a yes/no question. assumeYes skips the prompt.
func confirm(label string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}

	prompt := promptui.Select{
		Label: label,
		Items: []string{promptYes, promptNo},
	}

	_, answer, err := prompt.Run()
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	return answer == promptYes, nil
}
