package infra

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nrad-K/hh-vacancies/internal/domain/model"
)

type FileExporter interface {
	Write(vacancy model.Vacancy) error
	Close() error
}

// CSVHeadersはCSVExporterが出力する列です。
var CSVHeaders = []string{"id", "title", "link", "salary_from", "salary_to", "salary", "description"}

type CSVExporter struct {
	file   *os.File
	writer *csv.Writer
}

func formatIntPtr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func NewCSVExporter(filePath string) (*CSVExporter, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("CSVファイルの作成に失敗しました: %w", err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(CSVHeaders); err != nil {
		file.Close()
		return nil, fmt.Errorf("CSVヘッダーの書き込みに失敗しました: %w", err)
	}

	return &CSVExporter{
		file:   file,
		writer: writer,
	}, nil
}

func (c *CSVExporter) Write(v model.Vacancy) error {
	var from, to string
	if v.Salary != nil {
		from = formatIntPtr(v.Salary.From)
		to = formatIntPtr(v.Salary.To)
	}

	row := []string{
		v.ID,
		v.Title,
		v.Link,
		from,
		to,
		model.FormatSalary(v.Salary),
		PlainText(model.StripHighlightMarkup(v.Description)),
	}

	return c.writer.Write(row)
}

func (c *CSVExporter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}
