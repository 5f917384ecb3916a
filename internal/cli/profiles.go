package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cfg.FailFast)
		if err != nil {
			return err
		}
		defer services.Close()

		profiles, err := services.ProfileService.List(cmd.Context())
		if err != nil {
			return err
		}

		if len(profiles) == 0 {
			fmt.Println("No profiles found")
			return nil
		}

		return writeProfiles(os.Stdout, profiles)
	},
}

var profilesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cfg.FailFast)
		if err != nil {
			return err
		}
		defer services.Close()

		profile, err := services.ProfileService.Create(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Profile '%s' created with id %d\n", profile, profile.ID())
		return nil
	},
}

func writeProfiles(out io.Writer, profiles []domain.Profile) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, p := range profiles {
		fmt.Fprintf(w, "%d\t%s\n", p.ID(), p.Name())
	}
	return w.Flush()
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesAddCmd)
	rootCmd.AddCommand(profilesCmd)
}
