package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:          "salesreport",
	Short:        "Gera, baixa e carrega o relatório de vendas do marketplace",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(jobsCmd)
}
