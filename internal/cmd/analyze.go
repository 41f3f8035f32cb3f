package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Analyze sentiment of a single text",
	Long: `Analyze financial text and print its sentiment classification,
confidence, and era-calibrated scores.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("era", "", "era to analyze with: primitive, ramp, meme, present (default: API default)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	eraFlag, err := cmd.Flags().GetString("era")
	if err != nil {
		return err
	}
	era, err := parseEraFlag(eraFlag)
	if err != nil {
		return err
	}

	formatter, err := resolveFormatter()
	if err != nil {
		return err
	}

	client, err := buildClient()
	if err != nil {
		return err
	}

	result, err := client.Analyze(cmd.Context(), args[0], era)
	if err != nil {
		return err
	}

	rendered, err := formatter.FormatAnalysis(result)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}
