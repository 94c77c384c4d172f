// Package cmd contains the CLI entry point for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mage-os/github-dashboard/internal/config"
	"github.com/mage-os/github-dashboard/internal/dashboard"
	"github.com/mage-os/github-dashboard/internal/gateway"
	"github.com/mage-os/github-dashboard/internal/output"
	"github.com/mage-os/github-dashboard/internal/usecase"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mageos-dashboard",
	Short: "Generates a static HTML dashboard of an organization's open work.",
	Long: `mageos-dashboard queries the GitHub GraphQL API for the Mage-OS organization's
repositories, open issues and open pull requests, and writes a single
self-contained HTML dashboard to dist/index.html.

The API token is read from the GITHUB_TOKEN environment variable.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr)
		}
		return run(cmd.Context(), config.Load(), logger, cmd.OutOrStdout())
	},
}

// Execute runs the root command and exits with status 1 on any failure.
// This is called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error generating dashboard:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

// run wires the dependencies and generates the dashboard once.
func run(ctx context.Context, cfg *config.Config, logger *log.Logger, stdout io.Writer) error {
	if !cfg.HasToken() {
		logger.Println("GITHUB_TOKEN is not set; the request will be sent without valid credentials.")
	}

	githubGateway := gateway.NewGitHubGateway(cfg.Token, cfg.GraphQLURL, logger)
	generator := usecase.NewGenerator(
		githubGateway,
		dashboard.NewHTMLRenderer(time.Local),
		output.NewFileWriter(cfg.OutputDir, cfg.OutputFile),
		time.Now,
		logger,
	)

	if _, err := generator.Generate(ctx, cfg.Organization); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Dashboard generated successfully!")
	return nil
}
