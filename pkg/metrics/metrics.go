package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "sales_report"

// Recorder é o ponto de observabilidade injetado nos componentes do pipeline
type Recorder interface {
	IncPoll(status string)
	IncDownload(result string)
	ObserveArchiveBytes(size int64)
	IncFile(result string)
	AddRecordsPersisted(count int)
	ObserveStage(stage string, duration time.Duration)
}

// PrometheusRecorder registra as métricas do pipeline em um registry próprio
type PrometheusRecorder struct {
	registry         *prometheus.Registry
	polls            *prometheus.CounterVec
	downloads        *prometheus.CounterVec
	archiveBytes     prometheus.Histogram
	files            *prometheus.CounterVec
	recordsPersisted prometheus.Counter
	stageDuration    *prometheus.HistogramVec
}

func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_polls_total",
			Help:      "Consultas de status de geração por status observado.",
		}, []string{"status"}),
		downloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downloads_total",
			Help:      "Downloads de arquivos por resultado.",
		}, []string{"result"}),
		archiveBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "archive_size_bytes",
			Help:      "Tamanho dos arquivos baixados.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		}),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_files_total",
			Help:      "Arquivos do dataset processados por resultado.",
		}, []string{"result"}),
		recordsPersisted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_persisted_total",
			Help:      "Registros confirmados no banco.",
		}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duração de cada etapa do pipeline.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14),
		}, []string{"stage"}),
	}

	r.registry.MustRegister(
		r.polls,
		r.downloads,
		r.archiveBytes,
		r.files,
		r.recordsPersisted,
		r.stageDuration,
	)

	return r
}

func (r *PrometheusRecorder) IncPoll(status string) {
	r.polls.WithLabelValues(status).Inc()
}

func (r *PrometheusRecorder) IncDownload(result string) {
	r.downloads.WithLabelValues(result).Inc()
}

func (r *PrometheusRecorder) ObserveArchiveBytes(size int64) {
	r.archiveBytes.Observe(float64(size))
}

func (r *PrometheusRecorder) IncFile(result string) {
	r.files.WithLabelValues(result).Inc()
}

func (r *PrometheusRecorder) AddRecordsPersisted(count int) {
	r.recordsPersisted.Add(float64(count))
}

func (r *PrometheusRecorder) ObserveStage(stage string, duration time.Duration) {
	r.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// Registry expõe o registry para testes e para o push
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Push envia as métricas para o Pushgateway. Execuções em lote não expõem /metrics.
func (r *PrometheusRecorder) Push(ctx context.Context, gatewayURL, job string) error {
	if gatewayURL == "" {
		return nil
	}

	err := push.New(gatewayURL, job).
		Gatherer(r.registry).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("erro ao enviar métricas para o pushgateway: %w", err)
	}

	return nil
}

type nopRecorder struct{}

// Nop retorna um Recorder que descarta tudo
func Nop() Recorder {
	return nopRecorder{}
}

func (nopRecorder) IncPoll(string)                     {}
func (nopRecorder) IncDownload(string)                 {}
func (nopRecorder) ObserveArchiveBytes(int64)          {}
func (nopRecorder) IncFile(string)                     {}
func (nopRecorder) AddRecordsPersisted(int)            {}
func (nopRecorder) ObserveStage(string, time.Duration) {}
