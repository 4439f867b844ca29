package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanqian/passage-analyzer/internal/domain/analyzer"
	"github.com/yanqian/passage-analyzer/internal/domain/passage"
	"github.com/yanqian/passage-analyzer/internal/infra/config"
	"github.com/yanqian/passage-analyzer/internal/interface/cli"
)

// errAlreadyReported marks failures the command has already shown to the user.
var errAlreadyReported = errors.New("already reported")

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "passage-analyzer",
		Short: "Count the words of a fixed book passage and ask an LLM for its emotion and summary",
		Long: `passage-analyzer shows a hardcoded book passage, counts its words locally,
and sends it to a hosted chat-completion model that replies with the
predominant emotion and a 2-3 sentence summary.

Running without a subcommand starts the web UI (same as 'serve').
GROQ_API_KEY must be set in the environment or in a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the web UI and JSON API",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "analyze",
			Short: "Run one analysis and print it to the terminal",
			Args:  cobra.NoArgs,
			RunE:  runAnalyze,
		},
		&cobra.Command{
			Use:   "passage",
			Short: "Print the passage and its word count (no API key needed)",
			Args:  cobra.NoArgs,
			RunE:  runPassage,
		},
	)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}
	if err := app.Run(cmd.Context()); err != nil {
		return fmt.Errorf("application stopped with error: %w", err)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	svc, err := initializeAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to wire analyzer: %w", err)
	}

	renderer := cli.NewRenderer(cmd.OutOrStdout())
	words := svc.Passage().Words
	resp, analyzeErr := svc.Analyze(cmd.Context())
	if analyzeErr != nil {
		if err := renderer.Analysis(words, nil, analyzeErr); err != nil {
			return err
		}
		return errAlreadyReported
	}
	return renderer.Analysis(words, &resp, nil)
}

func runPassage(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read()
	if err != nil {
		return err
	}
	estimator := provideTokenEstimator(cfg, provideCLILogger())
	info := analyzer.PassageInfo{
		Text:  passage.Text,
		Stats: passage.Describe(passage.Text, estimator),
	}
	return cli.NewRenderer(cmd.OutOrStdout()).Passage(info)
}
