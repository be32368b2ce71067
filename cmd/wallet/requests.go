package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"data-wallet/internal/domain/accessrequests"
)

func newRequestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Pedidos de acceso pendientes (inbox)",
	}
	cmd.AddCommand(newRequestsListCmd(), newRequestsConfirmCmd(), newRequestsDenyCmd())
	return cmd
}

func newRequestsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista los pedidos pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			items, err := a.requests.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "inbox empty")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.UUID, r.WebID, r.ResourceName, r.ForPurpose)
			}
			return w.Flush()
		},
	}
}

func newRequestsConfirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <uuid>",
		Short: "Concede el acceso pedido",
		Args:  cobra.ExactArgs(1),
		RunE:  runRequestUpdate(accessrequests.ActionConfirm, "granted"),
	}
}

func newRequestsDenyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deny <uuid>",
		Short: "Rechaza el pedido",
		Args:  cobra.ExactArgs(1),
		RunE:  runRequestUpdate(accessrequests.ActionDeny, "denied"),
	}
}

func runRequestUpdate(action accessrequests.Action, verb string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requests.Update(cmd.Context(), args[0], action); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, args[0])
		return nil
	}
}
