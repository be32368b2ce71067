package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Inicia sesión contra el backend del wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			token, err := a.client.Login(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if err := a.sessions.Set(token); err != nil {
				return fmt.Errorf("guardando sesión: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", args[0])
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Descarta la sesión local",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
