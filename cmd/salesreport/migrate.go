package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica as migrações do banco",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		conn, err := pgconn(context.Background(), cfg.Database)
		if err != nil {
			return err
		}
		defer conn.Close()

		logrus.Info("Banco migrado")
		return nil
	},
}
