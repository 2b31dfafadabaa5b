package main

import (
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:   "capacity-planner",
	Short: "capacity-planner estimates LLM training time and plans the supporting infrastructure.",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(fabricCmd)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "Log verbosity (0=info, 1=debug, 2=trace)")
}
