// Package commands implements the portfolio-cli command tree.
package commands

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"portfolio/internal/config"
	"portfolio/pkg/portfolioclient"
)

var (
	serverURL string
	timeout   time.Duration

	client *portfolioclient.Logic
)

// Execute runs the root command.
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio-cli",
		Short:        "Talk to the portfolio site API from the terminal",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = portfolioclient.New(serverURL, nil)
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", config.Load().PortfolioURL, "portfolio server base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(contactCmd(), ideaCmd(), postsCmd(), postCmd())

	return root
}

// withSpinner runs fn while a spinner is shown on stderr.
func withSpinner(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	spin.Start()
	err := fn(ctx)
	spin.Stop()

	return err
}
