package main

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func loginCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := promptText("Email", false)
			if err != nil {
				return err
			}
			password, err := promptText("Password", true)
			if err != nil {
				return err
			}
			if err := (*a).session.Login(context.Background(), email, password); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", (*a).session.User().Name, (*a).session.User().Role)
			return nil
		},
	}
}

func registerCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := promptText("Name", false)
			if err != nil {
				return err
			}
			email, err := promptText("Email", false)
			if err != nil {
				return err
			}
			password, err := promptText("Password", true)
			if err != nil {
				return err
			}
			if err := (*a).session.Register(context.Background(), name, email, password); err != nil {
				return err
			}
			fmt.Printf("Welcome, %s!\n", (*a).session.User().Name)
			return nil
		},
	}
}

func logoutCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).session.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func whoamiCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(*a).session.IsAuthenticated() {
				fmt.Println("Not logged in.")
				return nil
			}
			u := (*a).session.User()
			fmt.Printf("%s <%s> role=%s\n", u.Name, u.Email, u.Role)
			return nil
		},
	}
}

func promptText(label string, mask bool) (string, error) {
	p := promptui.Prompt{Label: label}
	if mask {
		p.Mask = '*'
	}
	return p.Run()
}
