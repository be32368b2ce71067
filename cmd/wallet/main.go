package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"data-wallet/internal/adapters/navstack"
	sessionfile "data-wallet/internal/adapters/session"
	"data-wallet/internal/adapters/wallet"
	"data-wallet/internal/config"
	"data-wallet/internal/domain/accessgrants"
	"data-wallet/internal/domain/accessprompt"
	"data-wallet/internal/domain/accessrequests"
	"data-wallet/internal/domain/files"
	"data-wallet/internal/domain/scan"
	"data-wallet/internal/platform/logger"
	"data-wallet/internal/platform/querycache"
	"data-wallet/internal/ports/nav"
)

// app junta todo el wiring del cliente: config, sesión, HTTP client
// y los services de cada dominio.
type app struct {
	cfg config.Config
	log logger.Logger

	sessions *sessionfile.FileStore
	client   *wallet.Client
	nav      *navstack.Stack

	grants     *accessgrants.Service
	requests   *accessrequests.Service
	files      *files.Service
	prompts    *accessprompt.Service
	dispatcher *scan.Dispatcher
}

func newApp() (*app, error) {
	cfg := config.Load()
	log := logger.NewFromEnv()

	sessions, err := sessionfile.NewFileStore(cfg.SessionFile)
	if err != nil {
		return nil, err
	}

	client, err := wallet.NewClient(wallet.Config{
		BaseURL: cfg.WalletAPI,
		Timeout: cfg.HTTPTimeout,
	}, sessions, log)
	if err != nil {
		return nil, err
	}

	stack := navstack.New(nav.RouteHome, log)
	cache := querycache.New(0)

	client.OnSessionExpired(func() {
		cache.Clear()
		stack.Replace(nav.RouteLogin, nil)
		fmt.Fprintln(os.Stderr, "session expired, please login again")
	})

	return &app{
		cfg:        cfg,
		log:        log,
		sessions:   sessions,
		client:     client,
		nav:        stack,
		grants:     accessgrants.NewService(client.GrantsAPI(), cache, log),
		requests:   accessrequests.NewService(client.RequestsAPI(), cache, log),
		files:      files.NewService(client.FilesAPI(), client, cache, log),
		prompts:    accessprompt.NewService(client.PromptAPI(), log),
		dispatcher: scan.NewDispatcher(stack, log),
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wallet",
		Short:         "Data wallet client",
		Long:          "wallet maneja tu data wallet desde la terminal: archivos, pedidos de acceso, grants y QR codes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newFilesCmd(),
		newGrantsCmd(),
		newRequestsCmd(),
		newScanCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
