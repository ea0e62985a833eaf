package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/market-sales-report/internal/api"
	"github.com/vfg2006/market-sales-report/internal/scheduler"
)

var scheduleRunNow bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Executa o pipeline periodicamente conforme SALES_REPORT_SYNC_CRON",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		app, err := newApplication(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		if !app.cfg.SalesReportSync.Enabled {
			return errors.New("agendamento desabilitado: defina SALES_REPORT_SYNC_ENABLED=true")
		}

		syncService := scheduler.NewSalesReportSyncService(app, app.cfg)
		if err := syncService.Start(ctx); err != nil {
			return err
		}
		logrus.Info("Agendador do relatório de vendas iniciado com sucesso")

		if scheduleRunNow {
			if err := syncService.TriggerManualSync(ctx); err != nil {
				logrus.WithError(err).Warn("Sincronização imediata não iniciada")
			}
		}

		if app.cfg.Server.Port == "" {
			<-ctx.Done()
		} else {
			server := api.New(ctx, app.cfg, api.Dependencies{
				DB:       app.conn,
				Sync:     syncService,
				Jobs:     app.jobRepo,
				Gatherer: app.recorder.Registry(),
			})
			if err := server.Run(ctx); err != nil {
				return err
			}
		}

		logrus.WithFields(logrus.Fields(syncService.GetStatus())).Info("Agendador encerrado")
		return nil
	},
}

func init() {
	scheduleCmd.Flags().BoolVar(&scheduleRunNow, "now", false, "Executa uma sincronização imediatamente ao iniciar")
}
