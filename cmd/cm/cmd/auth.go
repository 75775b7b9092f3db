package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/carmatch/internal/api/client"
)

var errNotLoggedIn = errors.New("not logged in: run 'cm login' or pass --token")

func requireToken() error {
	if viper.GetString("token") == "" {
		return errNotLoggedIn
	}
	return nil
}

func registerCmd() *cobra.Command {
	var (
		username string
		password string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: "Creates an account and, unless --save=false, stores the returned token\n" +
			"in the config file. The password is prompted for when --password is omitted.",
		Example: `  cm register --username alice`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := textPrompt("Username", username)
			if err != nil {
				return err
			}
			pw, err := passwordPrompt("Password", password, true)
			if err != nil {
				return err
			}

			resp, err := newClient().Register(cmd.Context(), name, pw)
			if err != nil {
				return err
			}
			return finishAuth(cmd, resp, save, "Registered")
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username (3-50 characters)")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&save, "save", true, "save the token to the config file")

	return cmd
}

func loginCmd() *cobra.Command {
	var (
		username string
		password string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the bearer token",
		Example: `  cm login --username alice
  cm login --username alice --save=false --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := textPrompt("Username", username)
			if err != nil {
				return err
			}
			pw, err := passwordPrompt("Password", password, false)
			if err != nil {
				return err
			}

			resp, err := newClient().Login(cmd.Context(), name, pw)
			if err != nil {
				return err
			}
			return finishAuth(cmd, resp, save, "Logged in")
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&save, "save", true, "save the token to the config file")

	return cmd
}

func finishAuth(cmd *cobra.Command, resp *apiclient.AuthResponse, save bool, action string) error {
	out := cmd.OutOrStdout()

	var savedTo string
	if save {
		path, err := saveToken(resp.Token)
		if err != nil {
			return err
		}
		savedTo = path
	}

	if jsonOutput() {
		return outputJSON(out, resp)
	}

	success(out, "%s as %s.", action, resp.User.Username)
	if savedTo != "" {
		fmt.Fprintf(out, "Token saved to %s\n", savedTo)
	} else {
		fmt.Fprintf(out, "Token: %s\n", resp.Token)
	}
	return nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := saveToken(""); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func profileCmd() *cobra.Command {
	profileRoot := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfileShow(cmd)
		},
	}

	profileRoot.AddCommand(profileShowCmd(), profileUpdateCmd())

	return profileRoot
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfileShow(cmd)
		},
	}
}

func runProfileShow(cmd *cobra.Command) error {
	if err := requireToken(); err != nil {
		return err
	}

	u, err := newClient().Profile(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), u)
	}
	printUser(cmd.OutOrStdout(), u)
	return nil
}

func profileUpdateCmd() *cobra.Command {
	var (
		username       string
		changePassword bool
		password       string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change your username or password",
		Example: `  cm profile update --username alice2
  cm profile update --change-password`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			var update apiclient.ProfileUpdate
			if username != "" {
				update.Username = &username
			}
			if changePassword || password != "" {
				pw, err := passwordPrompt("New password", password, true)
				if err != nil {
					return err
				}
				update.Password = &pw
			}
			if update.Username == nil && update.Password == nil {
				return errors.New("nothing to update: pass --username or --change-password")
			}

			u, err := newClient().UpdateProfile(cmd.Context(), &update)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), u)
			}
			success(cmd.OutOrStdout(), "Profile updated.")
			printUser(cmd.OutOrStdout(), u)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "new username")
	cmd.Flags().BoolVar(&changePassword, "change-password", false, "prompt for a new password")
	cmd.Flags().StringVar(&password, "password", "", "new password (non-interactive)")

	return cmd
}
