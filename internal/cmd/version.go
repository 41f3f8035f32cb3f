package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/discourses/discourses-go"
)

var extended bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print version information. Use --extended for build details and the SDK version.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if extended {
			fmt.Printf("discourses %s\n", versionInfo.Version)
			fmt.Printf("Commit: %s\n", versionInfo.Commit)
			fmt.Printf("Built: %s\n", versionInfo.BuildDate)
			fmt.Printf("SDK: %s\n", discourses.Version)
			fmt.Printf("Go: %s\n", runtime.Version())
		} else {
			fmt.Printf("discourses %s\n", versionInfo.Version)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&extended, "extended", "e", false, "show extended version information")
}
