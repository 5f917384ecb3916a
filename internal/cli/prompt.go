package cli

import (
	"fmt"
	"strconv"
	"syscall"

	"golang.org/x/term"
)

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// readNewPassword prompts twice. An empty answer is returned as is when
// allowEmpty is set.
func readNewPassword(allowEmpty bool) (string, error) {
	password, err := readPassword("Enter password: ")
	if err != nil {
		return "", err
	}
	if password == "" && allowEmpty {
		return "", nil
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id: %s", arg)
	}
	return id, nil
}
