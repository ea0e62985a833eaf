package migration

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrations embed.FS

const migrationDir = "sql"

// Up aplica as migrações pendentes. Migrações já aplicadas são ignoradas pelo goose.
func Up(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(&logger{})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("erro ao configurar o dialeto: %w", err)
	}

	if err := goose.Up(db, migrationDir); err != nil {
		return fmt.Errorf("erro ao aplicar as migrações: %w", err)
	}

	return nil
}

// Files lista os scripts de migração embutidos no binário
func Files() ([]string, error) {
	entries, err := migrations.ReadDir(migrationDir)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar as migrações: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}

	return files, nil
}

// logger implementa goose.Logger sobre o logrus
type logger struct{}

func (l *logger) Printf(format string, v ...interface{}) { logrus.Infof(format, v...) }
func (l *logger) Fatalf(format string, v ...interface{}) { logrus.Fatalf(format, v...) }
