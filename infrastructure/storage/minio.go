package storage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/market-sales-report/internal/config"
	"github.com/vfg2006/market-sales-report/internal/domain"
)

const (
	defaultBucket = "sales-reports"
	zipMediaType  = "application/zip"
)

type MinioOpts func(c *minioConfig)

type minioConfig struct {
	endpoint        string
	bucket          string
	accessKey       string
	secretAccessKey string
	useSSL          bool
}

func newConfig(opts ...MinioOpts) *minioConfig {
	cfg := &minioConfig{
		bucket: defaultBucket,
	}

	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// MinioArchiveMirror copia os arquivos baixados para um bucket compatível com S3
type MinioArchiveMirror struct {
	cfg    *minioConfig
	client *minio.Client
}

func NewMinioArchiveMirror(opts ...MinioOpts) (*MinioArchiveMirror, error) {
	cfg := newConfig(opts...)

	if cfg.endpoint == "" {
		return nil, fmt.Errorf("endpoint do mirror não informado")
	}

	client, err := minio.New(cfg.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.accessKey, cfg.secretAccessKey, ""),
		Secure: cfg.useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o cliente minio: %w", err)
	}

	return &MinioArchiveMirror{cfg: cfg, client: client}, nil
}

// NewFromConfig monta o mirror a partir da configuração da aplicação
func NewFromConfig(cfg config.ArchiveMirror) (*MinioArchiveMirror, error) {
	opts := []MinioOpts{
		WithEndpoint(cfg.Endpoint),
		WithAccessKey(cfg.AccessKey),
		WithSecretKey(cfg.SecretKey),
		WithSSL(cfg.UseSSL),
	}
	if cfg.Bucket != "" {
		opts = append(opts, WithBucket(cfg.Bucket))
	}

	return NewMinioArchiveMirror(opts...)
}

// Mirror envia o arquivo para <report_type>/<nome do arquivo> e devolve a chave do objeto
func (m *MinioArchiveMirror) Mirror(ctx context.Context, archive *domain.Archive) (string, error) {
	if err := m.ensureBucket(ctx); err != nil {
		return "", err
	}

	key := ObjectKey(archive)

	info, err := m.client.FPutObject(ctx, m.cfg.bucket, key, archive.LocalPath, minio.PutObjectOptions{
		ContentType: zipMediaType,
		UserMetadata: map[string]string{
			"source-url":  archive.SourceURL,
			"report-type": archive.ReportType,
		},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar o arquivo para o bucket %s: %w", m.cfg.bucket, err)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": m.cfg.bucket,
		"key":    key,
		"size":   info.Size,
	}).Debug("Arquivo copiado para o mirror")

	return key, nil
}

func (m *MinioArchiveMirror) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.cfg.bucket)
	if err != nil {
		return fmt.Errorf("erro ao verificar o bucket %s: %w", m.cfg.bucket, err)
	}

	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.cfg.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("erro ao criar o bucket %s: %w", m.cfg.bucket, err)
	}

	return nil
}

func (m *MinioArchiveMirror) Bucket() string {
	return m.cfg.bucket
}

// ObjectKey usa barras mesmo em sistemas com outro separador de caminho
func ObjectKey(archive *domain.Archive) string {
	return path.Join(archive.ReportType, filepath.Base(archive.LocalPath))
}

func WithEndpoint(endpoint string) MinioOpts {
	return func(c *minioConfig) {
		c.endpoint = endpoint
	}
}

func WithBucket(bucket string) MinioOpts {
	return func(c *minioConfig) {
		c.bucket = bucket
	}
}

func WithAccessKey(accessKey string) MinioOpts {
	return func(c *minioConfig) {
		c.accessKey = accessKey
	}
}

func WithSecretKey(secretKey string) MinioOpts {
	return func(c *minioConfig) {
		c.secretAccessKey = secretKey
	}
}

func WithSSL(useSSL bool) MinioOpts {
	return func(c *minioConfig) {
		c.useSSL = useSSL
	}
}
