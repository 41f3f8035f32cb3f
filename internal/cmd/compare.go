package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discourses/discourses-go"
)

var compareCmd = &cobra.Command{
	Use:   "compare <text>",
	Short: "Compare sentiment of a text across eras",
	Long: `Analyze the same text against multiple era lexicons and print the
per-era classifications plus a drift summary. With no --eras, the API
compares all eras.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringSlice("eras", nil, "comma-separated eras to compare (default: all)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	tokens, err := cmd.Flags().GetStringSlice("eras")
	if err != nil {
		return err
	}

	eras := make([]discourses.Era, 0, len(tokens))
	for _, token := range tokens {
		era, err := discourses.ParseEra(token)
		if err != nil {
			return fmt.Errorf("--eras: %w", err)
		}
		eras = append(eras, era)
	}

	formatter, err := resolveFormatter()
	if err != nil {
		return err
	}

	client, err := buildClient()
	if err != nil {
		return err
	}

	result, err := client.CompareEras(cmd.Context(), args[0], eras...)
	if err != nil {
		return err
	}

	rendered, err := formatter.FormatCompare(result)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}
