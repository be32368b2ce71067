package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"data-wallet/internal/domain/accessgrants"
)

func newGrantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grants",
		Short: "Gestiona quién tiene acceso a tus datos",
	}
	cmd.AddCommand(newGrantsListCmd(), newGrantsRevokeCmd(), newGrantsRevokeAllCmd())
	return cmd
}

func newGrantsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista los grants agrupados por grantee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			groups, err := a.grants.Groups(cmd.Context())
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no access grants")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, g := range groups {
				fmt.Fprintf(w, "%s\t(%s)\n", g.WebID, displayName(g))
				for _, it := range g.Items {
					fmt.Fprintf(w, "  %s\t%s\t%s\texpira %s\n",
						it.UUID, it.ResourceName, joinModes(it.Modes),
						it.ExpirationDate.Format("2006-01-02"))
				}
			}
			return w.Flush()
		},
	}
}

func newGrantsRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <uuid>",
		Short: "Revoca un grant puntual",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			group, item, err := findGrant(cmd, a, args[0])
			if err != nil {
				return err
			}

			// El flujo de revocación pasa por el controller del
			// detalle: seleccionar, confirmar, y si era el último
			// grant del grantee la vista vuelve atrás sola.
			ctrl := accessgrants.NewDetailController(a.grants, a.nav, a.log, group.WebID)
			if err := ctrl.SelectRevoke(item); err != nil {
				return err
			}
			if err := ctrl.Confirm(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "revoked %s\n", item.UUID)
			return nil
		},
	}
}

func newGrantsRevokeAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke-all <webId>",
		Short: "Revoca todos los grants de un grantee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			ctrl := accessgrants.NewDetailController(a.grants, a.nav, a.log, args[0])
			if err := ctrl.SelectRevokeAll(); err != nil {
				return err
			}
			if err := ctrl.Confirm(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "revoked all grants for %s\n", args[0])
			return nil
		},
	}
}

func findGrant(cmd *cobra.Command, a *app, uuid string) (accessgrants.Group, accessgrants.Grant, error) {
	groups, err := a.grants.Groups(cmd.Context())
	if err != nil {
		return accessgrants.Group{}, accessgrants.Grant{}, err
	}
	for _, g := range groups {
		for _, it := range g.Items {
			if it.UUID == uuid {
				return g, it, nil
			}
		}
	}
	return accessgrants.Group{}, accessgrants.Grant{}, fmt.Errorf("grant %s no existe", uuid)
}

func displayName(g accessgrants.Group) string {
	if g.OwnerName != "" {
		return g.OwnerName
	}
	return g.WebID
}

func joinModes(modes []accessgrants.Mode) string {
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = string(m)
	}
	return strings.Join(out, ",")
}
