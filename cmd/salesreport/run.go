package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/market-sales-report/internal/usecases/syncing"
	"github.com/vfg2006/market-sales-report/pkg/log"
	"github.com/vfg2006/market-sales-report/pkg/utils"
)

var (
	runDateFrom   string
	runDateTo     string
	runReportType string
	runFormat     string
	runGrouping   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa o pipeline completo para um período",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFrom, err := utils.ParseDate(runDateFrom)
		if err != nil {
			return errors.New("--from deve estar no formato YYYY-MM-DD")
		}
		dateTo, err := utils.ParseDate(runDateTo)
		if err != nil {
			return errors.New("--to deve estar no formato YYYY-MM-DD")
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		app, err := newApplication(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, _ = log.WithRunID(ctx)
		start := time.Now()

		summary, err := app.Run(ctx, syncing.Request{
			DateFrom:   *dateFrom,
			DateTo:     *dateTo,
			ReportType: runReportType,
			Format:     runFormat,
			Grouping:   runGrouping,
		})
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Execução do pipeline falhou")
			return err
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"job_id":           summary.JobID,
			"report_id":        summary.ReportID,
			"archive":          summary.ArchivePath,
			"files_loaded":     summary.FilesLoaded,
			"duration_seconds": utils.RoundWithTwoDecimalPlace(time.Since(start).Seconds()),
		}).Info("Relatório carregado")

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runDateFrom, "from", "", "Data inicial do relatório (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runDateTo, "to", "", "Data final do relatório (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runReportType, "type", "", "Tipo do relatório, usado nos diretórios de trabalho")
	runCmd.Flags().StringVar(&runFormat, "format", "", "Formato do arquivo gerado (CSV, FILE)")
	runCmd.Flags().StringVar(&runGrouping, "grouping", "", "Agrupamento do relatório (OFFERS)")
	_ = runCmd.MarkFlagRequired("from")
	_ = runCmd.MarkFlagRequired("to")
}
