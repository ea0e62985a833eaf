package loading

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vfg2006/market-sales-report/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	extCSV  = ".csv"
	extXLSX = ".xlsx"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	errNoHeader       = errors.New("file has no header row")
	errUnknownColumns = errors.New("header has no known report column")
	errUnsupported    = errors.New("unsupported file extension")
)

// IsSupportedFile indica se o arquivo é um formato tabular que o loader lê
func IsSupportedFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case extCSV, extXLSX:
		return true
	default:
		return false
	}
}

// ParseFile lê um arquivo CSV ou XLSX inteiro e devolve os registros tipados.
// Falhas de conversão de células viram nil; falhas estruturais rejeitam o arquivo.
func (s *Service) ParseFile(path string) ([]domain.ReportRecord, error) {
	name := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, parseError(name, err)
	}

	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, parseError(name, fmt.Errorf("%w: %d bytes", domain.ErrFileTooLarge, info.Size()))
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case extCSV:
		rows, err = readDelimited(path)
	case extXLSX:
		rows, err = readSpreadsheet(path)
	default:
		err = fmt.Errorf("%w: %s", errUnsupported, filepath.Ext(path))
	}
	if err != nil {
		return nil, parseError(name, err)
	}

	return mapRows(rows, name)
}

func parseError(file string, cause error) error {
	return domain.NewPipelineError(domain.ErrParse, domain.StageParse, "").
		WithFile(file).
		WithCause(cause)
}

func mapRows(rows [][]string, name string) ([]domain.ReportRecord, error) {
	if len(rows) == 0 {
		return nil, parseError(name, errNoHeader)
	}

	mapper := newRowMapper(rows[0])
	if mapper.known == 0 {
		return nil, parseError(name, errUnknownColumns)
	}

	records := make([]domain.ReportRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record, ok := mapper.mapRow(row)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func readDelimited(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o arquivo: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)

	if prefix, err := reader.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = reader.Discard(len(utf8BOM))
	}

	firstLine, err := reader.Peek(reader.Size())
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("erro ao ler o cabeçalho: %w", err)
	}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = detectDelimiter(firstLine)
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o CSV: %w", err)
	}

	return rows, nil
}

// detectDelimiter escolhe entre ';' e ',' pela contagem na linha de cabeçalho
func detectDelimiter(sample []byte) rune {
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}

	if bytes.Count(sample, []byte{';'}) > bytes.Count(sample, []byte{','}) {
		return ';'
	}

	return ','
}

func readSpreadsheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir a planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoHeader
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a planilha %s: %w", sheets[0], err)
	}

	return rows, nil
}
