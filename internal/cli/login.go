package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errAuthenticationFailed = errors.New("authentication failed")

var loginCmd = &cobra.Command{
	Use:   "login <last-name> <first-name>",
	Short: "Check administrator credentials",
	Long:  "Check that the developer exists, holds the administrator profile and that the prompted password matches.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cfg.FailFast)
		if err != nil {
			return err
		}
		defer services.Close()

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		ok, err := services.AuthService.Authenticate(cmd.Context(), args[0], args[1], password)
		if err != nil {
			return err
		}
		if !ok {
			return errAuthenticationFailed
		}

		fmt.Printf("Authenticated as %s %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
