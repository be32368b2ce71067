package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Archivos guardados en el wallet",
	}
	cmd.AddCommand(newFilesListCmd(), newFilesSaveCmd(), newFilesGetCmd(), newFilesRmCmd())
	return cmd
}

func newFilesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista los archivos del wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			items, err := a.files.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "wallet is empty")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, f := range items {
				kind := "file"
				if f.IsRDFResource {
					kind = "rdf"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Identifier, f.FileName, kind)
			}
			return w.Flush()
		},
	}
}

func newFilesSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <uri> <contentType>",
		Short: "Descarga un recurso externo y lo guarda en el wallet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.files.SaveToWallet(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved")
			return nil
		},
	}
}

func newFilesGetCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "get <identifier>",
		Short: "Trae el contenido crudo de un archivo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			data, err := a.files.Raw(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "archivo de salida (default stdout)")
	return cmd
}

func newFilesRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <identifier>",
		Short: "Borra un archivo del wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.files.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
