package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"taskdeck/internal/session"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}

			if email == "" {
				email = prompt("Email: ")
			}
			if password == "" {
				password = prompt("Password: ")
			}

			user, err := a.session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s <%s>\n", user.Username, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			a.session.Logout(cmd.Context())
			fmt.Println("Logged out")
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var in session.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}

			if in.Username == "" {
				in.Username = prompt("Username: ")
			}
			if in.Email == "" {
				in.Email = prompt("Email: ")
			}
			if in.Password == "" {
				in.Password = prompt("Password: ")
				in.ConfirmPassword = prompt("Confirm password: ")
			} else if in.ConfirmPassword == "" {
				in.ConfirmPassword = in.Password
			}

			if err := a.session.Register(cmd.Context(), in); err != nil {
				return err
			}

			// Registering does not hand back a token; log in with the
			// fresh credentials right away.
			user, err := a.session.Login(cmd.Context(), in.Email, in.Password)
			if err != nil {
				return fmt.Errorf("registered, but login failed: %w", err)
			}
			fmt.Printf("Registered and logged in as %s <%s>\n", user.Username, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Username, "username", "u", "", "display name")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "account password")
	return cmd
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}
			user, _ := a.session.CurrentUser()
			fmt.Printf("%s <%s>\n", user.Username, user.Email)
			return nil
		},
	}
}

func prompt(label string) string {
	fmt.Print(label)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
