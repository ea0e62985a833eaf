package loading

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/market-sales-report/infrastructure/repository/mocks"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/pkg/log"
	"github.com/vfg2006/market-sales-report/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockSalesReportRepository) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesReportRepository(ctrl)

	cfg := &config.Config{Report: config.Report{MaxFileSizeBytes: 1 << 20}}
	return NewService(cfg, repo, metrics.Nop()), repo
}

func makeRecords(n int) []domain.ReportRecord {
	records := make([]domain.ReportRecord, n)
	for i := range records {
		offerID := "SKU"
		records[i].OfferID = &offerID
	}
	return records
}

func batchOf(size int) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		records, ok := x.([]domain.ReportRecord)
		return ok && len(records) == size
	})
}

func TestService_Persist(t *testing.T) {
	tests := []struct {
		name          string
		records       int
		batchSize     int
		setup         func(m *mocks.MockSalesReportRepository)
		wantPersisted int
		wantChunk     int
		wantErr       bool
	}{
		{
			name:      "2500 registros em lotes de 1000 geram três commits",
			records:   2500,
			batchSize: 1000,
			setup: func(m *mocks.MockSalesReportRepository) {
				gomock.InOrder(
					m.EXPECT().SaveBatch(gomock.Any(), batchOf(1000)).Return(nil),
					m.EXPECT().SaveBatch(gomock.Any(), batchOf(1000)).Return(nil),
					m.EXPECT().SaveBatch(gomock.Any(), batchOf(500)).Return(nil),
				)
			},
			wantPersisted: 2500,
		},
		{
			name:      "Falha no terceiro lote mantém os dois primeiros",
			records:   2500,
			batchSize: 1000,
			setup: func(m *mocks.MockSalesReportRepository) {
				gomock.InOrder(
					m.EXPECT().SaveBatch(gomock.Any(), batchOf(1000)).Return(nil),
					m.EXPECT().SaveBatch(gomock.Any(), batchOf(1000)).Return(nil),
					m.EXPECT().SaveBatch(gomock.Any(), batchOf(500)).Return(errors.New("deadlock detected")),
				)
			},
			wantPersisted: 2000,
			wantChunk:     2,
			wantErr:       true,
		},
		{
			name:      "Falha no primeiro lote interrompe os seguintes",
			records:   30,
			batchSize: 10,
			setup: func(m *mocks.MockSalesReportRepository) {
				m.EXPECT().SaveBatch(gomock.Any(), batchOf(10)).Return(errors.New("conexão perdida")).Times(1)
			},
			wantPersisted: 0,
			wantChunk:     0,
			wantErr:       true,
		},
		{
			name:      "Tamanho de lote inválido usa o padrão",
			records:   1500,
			batchSize: 0,
			setup: func(m *mocks.MockSalesReportRepository) {
				gomock.InOrder(
					m.EXPECT().SaveBatch(gomock.Any(), batchOf(1000)).Return(nil),
					m.EXPECT().SaveBatch(gomock.Any(), batchOf(500)).Return(nil),
				)
			},
			wantPersisted: 1500,
		},
		{
			name:          "Sem registros não acessa o banco",
			records:       0,
			batchSize:     1000,
			setup:         func(m *mocks.MockSalesReportRepository) {},
			wantPersisted: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			persisted, err := service.Persist(context.Background(), makeRecords(tt.records), tt.batchSize)
			assert.Equal(t, tt.wantPersisted, persisted)

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrPersist)

			var pipelineErr *domain.PipelineError
			require.True(t, errors.As(err, &pipelineErr))
			assert.Equal(t, tt.wantChunk, pipelineErr.Chunk)
		})
	}
}

func TestService_ProcessDataset(t *testing.T) {
	service, repo := newTestService(t)
	hook := test.NewGlobal()
	defer hook.Reset()

	dir := t.TempDir()
	writeFile(t, dir, "a_report.csv", "DAY;OFFER_ID\n10-10-2025;SKU-1\n10-10-2025;SKU-2\n")
	writeFile(t, dir, "b_broken.csv", "DAY;OFFER_ID\n10-10-2025;\"SKU-3\n")
	writeFile(t, dir, "c_report.csv", "DAY;OFFER_ID\n11-10-2025;SKU-4\n")
	writeFile(t, dir, "notes.txt", "ignorado")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	writeFile(t, filepath.Join(dir, "nested"), "d_report.csv", "DAY;OFFER_ID\n12-10-2025;SKU-5\n")

	gomock.InOrder(
		repo.EXPECT().SaveBatch(gomock.Any(), batchOf(2)).Return(nil),
		repo.EXPECT().SaveBatch(gomock.Any(), batchOf(1)).Return(nil),
	)

	loaded, err := service.ProcessDataset(context.Background(), dir, 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)

	var failed []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel {
			failed = append(failed, entry.Data["file"].(string))
		}
	}
	assert.Equal(t, []string{"b_broken.csv"}, failed)
}

func TestService_ProcessDataset_PersistFailureSkipsFile(t *testing.T) {
	service, repo := newTestService(t)

	dir := t.TempDir()
	writeFile(t, dir, "a_report.csv", "DAY;OFFER_ID\n10-10-2025;SKU-1\n")
	writeFile(t, dir, "b_report.csv", "DAY;OFFER_ID\n11-10-2025;SKU-2\n")

	gomock.InOrder(
		repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(nil),
	)

	loaded, err := service.ProcessDataset(context.Background(), dir, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)
}

func TestService_ProcessDataset_EmptyOrMissingDirectory(t *testing.T) {
	service, _ := newTestService(t)

	loaded, err := service.ProcessDataset(context.Background(), t.TempDir(), 1000)
	require.NoError(t, err)
	assert.Zero(t, loaded)

	loaded, err = service.ProcessDataset(context.Background(), filepath.Join(t.TempDir(), "missing"), 1000)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoDataLoaded)
	assert.Zero(t, loaded)
}
