package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discourses/discourses-go/internal/batchfile"
)

var batchCmd = &cobra.Command{
	Use:   "batch --file <path>",
	Short: "Analyze a file of texts in a single request",
	Long: `Analyze multiple texts in one API request. The input file is a YAML
or JSON list of {id, text} entries; entries without an id get a generated
UUID. Results are keyed by id.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().String("file", "", "batch input file (.yaml or .json)")
	batchCmd.Flags().String("era", "", "era to analyze with (default: present)")
	_ = batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	eraFlag, err := cmd.Flags().GetString("era")
	if err != nil {
		return err
	}
	era, err := parseEraFlag(eraFlag)
	if err != nil {
		return err
	}

	items, err := batchfile.Read(path)
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

	result, err := client.Batch(cmd.Context(), items, era)
	if err != nil {
		return err
	}

	rendered, err := formatter.FormatBatch(result)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}
