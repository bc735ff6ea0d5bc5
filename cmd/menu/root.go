package main

import (
	"fmt"
	"os"

	"github.com/fekuna/omnipos-menu-service/config"
	"github.com/fekuna/omnipos-menu-service/internal/menu"
	"github.com/fekuna/omnipos-menu-service/internal/notify"
	"github.com/fekuna/omnipos-menu-service/pkg/logger"
	"github.com/spf13/cobra"
)

// app carries the wired core the commands run against. One invocation is one
// operator session.
type app struct {
	cfg      *config.Config
	logger   logger.ZapLogger
	repo     menu.Repository
	uc       menu.UseCase
	notifier *notify.Notifier
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "menu",
		Short:         "Menu catalog administration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newAddCommand(a))
	rootCmd.AddCommand(newEditCommand(a))
	rootCmd.AddCommand(newDeleteCommand(a))

	return rootCmd
}

// drainNotifications prints any one-shot confirmations a mutation emitted.
func drainNotifications(a *app) {
	for {
		select {
		case n := <-a.notifier.Events():
			fmt.Fprintf(os.Stdout, "[%s] %s\n", n.Severity, n.Message)
		default:
			return
		}
	}
}
