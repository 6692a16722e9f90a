package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tabuada",
	Short: "Times-tables trainer for kids",
	Long:  "Tabuada is a terminal app for practicing multiplication tables and the other arithmetic operations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the TOML config file (overrides the default XDG location)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(aiCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
