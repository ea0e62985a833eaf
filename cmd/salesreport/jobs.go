package main

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var jobsLimit uint64

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Lista as execuções mais recentes registradas no diário de jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		app, err := newApplication(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		jobs, err := app.jobRepo.ListRecent(ctx, jobsLimit)
		if err != nil {
			return err
		}

		encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(jobs)
	},
}

func init() {
	jobsCmd.Flags().Uint64Var(&jobsLimit, "limit", 20, "Quantidade máxima de jobs listados")
}
