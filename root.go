package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "interview-pipeline",
		Short:         "Score mock technical interview transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevelFlag, "log-level", "", "Override pipeline.log_level")
	rootCmd.PersistentFlags().StringVar(&ctx.logFormatFlag, "log-format", "", "Override pipeline.log_format (text or json)")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newScoreCommand(ctx))
	rootCmd.AddCommand(newSentimentCommand(ctx))
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newSynthesizeCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
