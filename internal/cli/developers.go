package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/spf13/cobra"
)

var developersCmd = &cobra.Command{
	Use:   "developers",
	Short: "Manage developers",
	Long:  "Manage developer accounts and their profiles",
}

var developersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all developers",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cfg.FailFast)
		if err != nil {
			return err
		}
		defer services.Close()

		developers, err := services.DeveloperService.List(cmd.Context())
		if err != nil {
			return err
		}

		if len(developers) == 0 {
			fmt.Println("No developers found")
			return nil
		}

		return writeDevelopers(os.Stdout, developers)
	},
}

var developersAddCmd = &cobra.Command{
	Use:   "add <last-name> <first-name>",
	Short: "Add a new developer",
	Long: `Add a new developer. The password is prompted for; leaving it empty
sets the last name as initial password.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		profileID, _ := cmd.Flags().GetInt("profile")

		services, err := initServices(cfg.FailFast)
		if err != nil {
			return err
		}
		defer services.Close()

		password, err := readNewPassword(true)
		if err != nil {
			return err
		}

		developer := domain.NewDeveloper(0, args[0], args[1], phone, email, domain.NewProfile(profileID, ""))
		developer.Password = password

		created, err := services.DeveloperService.Create(cmd.Context(), developer)
		if err != nil {
			return err
		}

		if !services.DeveloperRepo.Available() {
			fmt.Printf("Storage unavailable; developer '%s %s' not stored\n", created.FirstName, created.LastName)
			return nil
		}

		fmt.Printf("Developer '%s %s' created with id %d\n", created.FirstName, created.LastName, created.ID)
		return nil
	},
}

var developersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a developer",
	Long:  "Update the identity or profile of a developer. Only the given flags are changed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		services, err := initServices(cfg.FailFast)
		if err != nil {
			return err
		}
		defer services.Close()

		developer, err := services.DeveloperService.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("last-name") {
			developer.LastName, _ = flags.GetString("last-name")
		}
		if flags.Changed("first-name") {
			developer.FirstName, _ = flags.GetString("first-name")
		}
		if flags.Changed("email") {
			developer.Email, _ = flags.GetString("email")
		}
		if flags.Changed("phone") {
			developer.Phone, _ = flags.GetString("phone")
		}
		if flags.Changed("profile") {
			profileID, _ := flags.GetInt("profile")
			developer.Profile = domain.NewProfile(profileID, "")
		}

		updated, err := services.DeveloperService.Update(cmd.Context(), developer)
		if err != nil {
			return err
		}

		fmt.Printf("Developer %d updated (%s %s, %s)\n", updated.ID, updated.FirstName, updated.LastName, updated.Profile)
		return nil
	},
}

var developersUpdatePasswordCmd = &cobra.Command{
	Use:   "update-password <id>",
	Short: "Update developer password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		services, err := initServices(cfg.FailFast)
		if err != nil {
			return err
		}
		defer services.Close()

		password, err := readNewPassword(false)
		if err != nil {
			return err
		}

		if err := services.DeveloperService.ChangePassword(cmd.Context(), id, password); err != nil {
			return err
		}

		fmt.Printf("Password updated for developer %d\n", id)
		return nil
	},
}

var developersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a developer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		services, err := initServices(cfg.FailFast)
		if err != nil {
			return err
		}
		defer services.Close()

		// Confirm deletion
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("Are you sure you want to delete developer %d? (yes/no): ", id)
			var confirm string
			fmt.Scanln(&confirm)
			if confirm != "yes" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := services.DeveloperService.Delete(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Developer %d deleted\n", id)
		return nil
	},
}

func writeDevelopers(out io.Writer, developers []*domain.Developer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLAST NAME\tFIRST NAME\tEMAIL\tPHONE\tPROFILE")
	for _, d := range developers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			d.ID,
			d.LastName,
			d.FirstName,
			d.Email,
			d.Phone,
			d.Profile,
		)
	}
	return w.Flush()
}

func init() {
	developersAddCmd.Flags().String("email", "", "email address")
	developersAddCmd.Flags().String("phone", "", "phone number")
	developersAddCmd.Flags().Int("profile", 0, "profile id")
	developersAddCmd.MarkFlagRequired("email")
	developersAddCmd.MarkFlagRequired("profile")

	developersUpdateCmd.Flags().String("last-name", "", "new last name")
	developersUpdateCmd.Flags().String("first-name", "", "new first name")
	developersUpdateCmd.Flags().String("email", "", "new email address")
	developersUpdateCmd.Flags().String("phone", "", "new phone number")
	developersUpdateCmd.Flags().Int("profile", 0, "new profile id")

	developersDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	developersCmd.AddCommand(developersListCmd)
	developersCmd.AddCommand(developersAddCmd)
	developersCmd.AddCommand(developersUpdateCmd)
	developersCmd.AddCommand(developersUpdatePasswordCmd)
	developersCmd.AddCommand(developersDeleteCmd)
	rootCmd.AddCommand(developersCmd)
}
