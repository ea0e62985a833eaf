package domain

import "time"

// Archive é o arquivo zip baixado de um relatório concluído
type Archive struct {
	SourceURL    string
	LocalPath    string
	SizeBytes    int64
	ReportType   string
	DownloadedAt time.Time
}

// ExtractedDataset é o conjunto de arquivos extraídos de um único Archive
type ExtractedDataset struct {
	Directory  string
	ReportType string
	Files      []string
}

// RunSummary resume uma execução completa do pipeline
type RunSummary struct {
	JobID            string
	ReportID         string
	ReportType       string
	ArchivePath      string
	DatasetDirectory string
	FilesLoaded      int
	StartedAt        time.Time
	FinishedAt       time.Time
}
