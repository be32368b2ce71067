package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"data-wallet/internal/domain/scan"
	"data-wallet/internal/ports/nav"
)

func newScanCmd() *cobra.Command {
	var (
		fromFile string
		request  bool
		save     bool
	)
	cmd := &cobra.Command{
		Use:   "scan [payload]",
		Short: "Procesa el contenido de un QR code",
		Long: `scan clasifica el payload de un QR y actúa según el tipo:
un access prompt se resuelve contra el backend (y con --request se pide
el acceso), un download se puede guardar en el wallet con --save.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := scanInput(args, fromFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.dispatcher.HandleScan(raw); err != nil {
				if errors.Is(err, scan.ErrUnrecognized) {
					return fmt.Errorf("QR code is not a valid format")
				}
				return err
			}

			entry := a.nav.Current()
			switch entry.Route {
			case nav.RouteAccessPrompt:
				return runAccessPrompt(cmd, a, entry.Params, request)
			case nav.RouteDownload:
				return runDownload(cmd, a, entry.Params, save)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "leer el payload de un archivo (- para stdin)")
	cmd.Flags().BoolVar(&request, "request", false, "enviar el pedido de acceso del prompt")
	cmd.Flags().BoolVar(&save, "save", false, "guardar el download en el wallet")
	return cmd
}

func scanInput(args []string, fromFile string, stdin io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	switch fromFile {
	case "":
		return "", fmt.Errorf("falta el payload: pasalo como argumento o con --file")
	case "-":
		data, err := io.ReadAll(stdin)
		return string(data), err
	default:
		data, err := os.ReadFile(fromFile)
		return string(data), err
	}
}

func runAccessPrompt(cmd *cobra.Command, a *app, params nav.Params, request bool) error {
	webID, client, rtype := params["webId"], params["client"], params["type"]

	res, err := a.prompts.Resolve(cmd.Context(), webID, rtype)
	if err != nil {
		return fmt.Errorf("resolviendo el prompt: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "access prompt from %s\n", client)
	fmt.Fprintf(out, "  owner:    %s\n", res.OwnerName)
	fmt.Fprintf(out, "  resource: %s\n", res.ResourceName)

	if !request {
		fmt.Fprintln(out, "run again with --request to ask for access")
		return nil
	}
	if err := a.prompts.RequestAccess(cmd.Context(), res.Resource, client); err != nil {
		return fmt.Errorf("pidiendo acceso: %w", err)
	}
	fmt.Fprintln(out, "access requested")
	return nil
}

func runDownload(cmd *cobra.Command, a *app, params nav.Params, save bool) error {
	uri, contentType := params["uri"], params["contentType"]

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "download: %s (%s)\n", uri, contentType)
	if !save {
		fmt.Fprintln(out, "run again with --save to store it in the wallet")
		return nil
	}
	if err := a.files.SaveToWallet(cmd.Context(), uri, contentType); err != nil {
		return fmt.Errorf("guardando en el wallet: %w", err)
	}
	fmt.Fprintln(out, "saved to wallet")
	return nil
}
