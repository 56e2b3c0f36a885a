package cmd

import (
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sprinklerprep",
	Short: "Minnesota Journeyman Sprinkler Fitter exam prep",
	Long:  "SprinklerPrep is a terminal study app for the Minnesota Journeyman Fire Sprinkler Fitter exam: NFPA 13, NFPA 25 and the Minnesota amendments.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPRINKLERPREP_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Question bank file path or URL (overrides SPRINKLERPREP_BANK env var)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(mnemonicCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SPRINKLERPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
