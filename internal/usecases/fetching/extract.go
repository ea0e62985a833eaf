package fetching

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/vfg2006/market-sales-report/pkg/log"
)

var errUnsafePath = errors.New("archive member escapes target directory")

// Extract descompacta o arquivo em processed/<tipo>/current. O diretório é
// apagado recursivamente antes, então ao final contém apenas este arquivo.
func (s *Service) Extract(ctx context.Context, archivePath, reportType string) (*domain.ExtractedDataset, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"report_type": reportType,
		"file":        archivePath,
	})

	target := s.DatasetDir(reportType)

	if err := os.RemoveAll(target); err != nil {
		return nil, domain.NewPipelineError(domain.ErrExtraction, domain.StageExtraction, "erro ao limpar o diretório de trabalho").
			WithFile(target).
			WithCause(err)
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, domain.NewPipelineError(domain.ErrExtraction, domain.StageExtraction, "erro ao criar o diretório de trabalho").
			WithFile(target).
			WithCause(err)
	}

	files, err := s.unzip(archivePath, target)
	if err != nil {
		// Um conjunto parcial não pode ficar para a próxima execução
		_ = os.RemoveAll(target)
		logger.WithError(err).Error("Erro ao extrair o arquivo do relatório")
		return nil, domain.NewPipelineError(domain.ErrExtraction, domain.StageExtraction, "").
			WithFile(archivePath).
			WithCause(err)
	}

	logger.WithField("files", len(files)).Info("Arquivo do relatório extraído")

	return &domain.ExtractedDataset{
		Directory:  target,
		ReportType: reportType,
		Files:      files,
	}, nil
}

func (s *Service) unzip(archivePath, target string) ([]string, error) {
	reader, err := zip.OpenReader(archivePath)
	if errors.Is(err, zip.ErrInsecurePath) {
		_ = reader.Close()
		return nil, fmt.Errorf("%w: %w", errUnsafePath, err)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o arquivo zip: %w", err)
	}
	defer reader.Close()

	files := make([]string, 0, len(reader.File))
	for _, member := range reader.File {
		dest, err := memberPath(target, member.Name)
		if err != nil {
			return nil, err
		}

		if member.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return nil, fmt.Errorf("erro ao criar o diretório %s: %w", member.Name, err)
			}
			continue
		}

		if s.maxFileSize > 0 && member.UncompressedSize64 > uint64(s.maxFileSize) {
			return nil, fmt.Errorf("%w: %s tem %d bytes", domain.ErrFileTooLarge, member.Name, member.UncompressedSize64)
		}

		if err := s.extractMember(member, dest); err != nil {
			return nil, err
		}

		rel, _ := filepath.Rel(target, dest)
		files = append(files, rel)
	}

	sort.Strings(files)

	return files, nil
}

func (s *Service) extractMember(member *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("erro ao criar o diretório de %s: %w", member.Name, err)
	}

	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("erro ao abrir %s: %w", member.Name, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("erro ao criar %s: %w", dest, err)
	}
	defer out.Close()

	reader := io.Reader(src)
	if s.maxFileSize > 0 {
		// O tamanho declarado no cabeçalho do zip pode não ser verdadeiro
		reader = io.LimitReader(src, s.maxFileSize+1)
	}

	written, err := io.Copy(out, reader)
	if err != nil {
		return fmt.Errorf("erro ao extrair %s: %w", member.Name, err)
	}

	if s.maxFileSize > 0 && written > s.maxFileSize {
		return fmt.Errorf("%w: %s", domain.ErrFileTooLarge, member.Name)
	}

	return out.Close()
}

// memberPath resolve o destino de um membro e rejeita caminhos fora do diretório alvo
func memberPath(target, name string) (string, error) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%w: %s", errUnsafePath, name)
	}

	dest := filepath.Join(target, name)
	if dest != target && !strings.HasPrefix(dest, filepath.Clean(target)+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", errUnsafePath, name)
	}

	return dest, nil
}
