package repository

//go:generate mockgen -source=report_job.go -destination=mocks/mock_report_job.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/market-sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/pkg/utils"
)

const (
	reportJobsTable = "report_jobs rj"
)

type ReportJobRepository interface {
	Create(ctx context.Context, job *domain.ReportJob) error
	Update(ctx context.Context, job *domain.ReportJob) error
	GetByID(ctx context.Context, id string) (*domain.ReportJob, error)
	ListRecent(ctx context.Context, limit uint64) ([]*domain.ReportJob, error)
}

type reportJobRepository struct {
	conn postgres.Queryer
}

func NewReportJobRepository(conn postgres.Queryer) ReportJobRepository {
	return &reportJobRepository{
		conn: conn,
	}
}

// Create grava o job gerando um ID quando ele ainda não tem um
func (r *reportJobRepository) Create(ctx context.Context, job *domain.ReportJob) error {
	if job.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar o ID do job: %w", err)
		}
		job.ID = id
	}

	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	query, args, err := squirrel.
		Insert("report_jobs").
		Columns("id", "report_id", "report_type", "date_from", "date_to", "status", "sub_status", "file_link", "error", "created_at", "updated_at").
		Values(
			job.ID,
			job.ReportID,
			job.ReportType,
			job.DateFrom.Format(time.DateOnly),
			job.DateTo.Format(time.DateOnly),
			string(job.Status),
			job.SubStatus,
			job.FileLink,
			job.Error,
			job.CreatedAt,
			job.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir o job: %w", err)
	}

	return nil
}

func (r *reportJobRepository) Update(ctx context.Context, job *domain.ReportJob) error {
	job.UpdatedAt = time.Now().UTC()

	query, args, err := buildReportJobUpdate(job)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar o job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("job %s não encontrado", job.ID)
	}

	return nil
}

func buildReportJobUpdate(job *domain.ReportJob) (string, []interface{}, error) {
	return squirrel.
		Update("report_jobs").
		Set("report_id", job.ReportID).
		Set("status", string(job.Status)).
		Set("sub_status", job.SubStatus).
		Set("file_link", job.FileLink).
		Set("error", job.Error).
		Set("updated_at", job.UpdatedAt).
		Where(squirrel.Eq{"id": job.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *reportJobRepository) GetByID(ctx context.Context, id string) (*domain.ReportJob, error) {
	query, args, err := squirrel.
		Select("rj.id, rj.report_id, rj.report_type, rj.date_from, rj.date_to, rj.status, rj.sub_status, rj.file_link, rj.error, rj.created_at, rj.updated_at").
		From(reportJobsTable).
		Where(squirrel.Eq{"rj.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	job, err := scanReportJob(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear o job: %w", err)
	}

	return job, nil
}

func (r *reportJobRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.ReportJob, error) {
	query, args, err := squirrel.
		Select("rj.id, rj.report_id, rj.report_type, rj.date_from, rj.date_to, rj.status, rj.sub_status, rj.file_link, rj.error, rj.created_at, rj.updated_at").
		From(reportJobsTable).
		OrderBy("rj.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	jobs := make([]*domain.ReportJob, 0)
	for rows.Next() {
		job, err := scanReportJob(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear o job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return jobs, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReportJob(row scanner) (*domain.ReportJob, error) {
	job := &domain.ReportJob{}
	var (
		reportID sql.NullString
		status   string
	)

	if err := row.Scan(
		&job.ID,
		&reportID,
		&job.ReportType,
		&job.DateFrom,
		&job.DateTo,
		&status,
		&job.SubStatus,
		&job.FileLink,
		&job.Error,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, err
	}

	job.ReportID = reportID.String
	job.Status = domain.ReportStatus(status)

	return job, nil
}
