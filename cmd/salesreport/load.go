package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/pkg/log"
)

var (
	loadDir        string
	loadReportType string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Carrega no banco os arquivos de um diretório já extraído",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		app, err := newApplication(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, _ = log.WithRunID(ctx)

		dir := loadDir
		if dir == "" {
			reportType := loadReportType
			if reportType == "" {
				reportType = app.cfg.Report.Type
			}
			dir = app.fetcher.DatasetDir(reportType)
		}

		loaded, err := app.loader.ProcessDataset(ctx, dir, app.cfg.Report.BatchSize)
		app.pushMetrics(ctx)
		if err != nil {
			return err
		}
		if loaded == 0 {
			return domain.NewPipelineError(domain.ErrNoDataLoaded, domain.StageLoad, "").WithFile(dir)
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"dir":          dir,
			"files_loaded": loaded,
		}).Info("Diretório carregado")

		return nil
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadDir, "dir", "", "Diretório com os arquivos extraídos")
	loadCmd.Flags().StringVar(&loadReportType, "type", "", "Tipo do relatório, usado quando --dir não é informado")
}
