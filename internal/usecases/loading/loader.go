// Package loading converte exportações tabulares de vendas em registros tipados
package loading

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/internal/domain"
)

// Columns mapeia os campos do registro para os nomes das colunas da exportação
type Columns struct {
	ItemTag    string
	BrandName  string
	Sold       string
	ProfitLoss string
	Cost       string
}

// DefaultColumns são os cabeçalhos usados pela exportação do leilão
var DefaultColumns = Columns{
	ItemTag:    "Ctag",
	BrandName:  "Brand Name",
	Sold:       "Sold",
	ProfitLoss: "Profit / Loss",
	Cost:       "Cost(price after Tax)",
}

// Loader lê exportações CSV de um mês
type Loader struct {
	columns Columns
}

// NewLoader cria um loader com os cabeçalhos informados
func NewLoader(columns Columns) *Loader {
	return &Loader{columns: columns}
}

// LoadFile abre, lê e fecha o arquivo, devolvendo os registros do mês
func (l *Loader) LoadFile(path string) ([]domain.SaleRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo de vendas %s: %w", path, err)
	}
	defer file.Close()

	records, err := l.Load(path, file)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de vendas %s: %w", path, err)
	}

	return records, nil
}

// Load lê um CSV completo. O nome da fonte é usado apenas nos logs.
func (l *Loader) Load(source string, r io.Reader) ([]domain.SaleRecord, error) {
	reader, err := newCSVReader(r)
	if err != nil {
		return nil, err
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}

	rows := make([][]string, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha %d: %w", len(rows)+2, err)
		}
		rows = append(rows, row)
	}

	return l.FromRows(source, header, rows)
}

// FromRows converte linhas já tabuladas (CSV, planilha, banco) em registros. A primeira linha de
// dados corresponde à linha 2 nos logs.
func (l *Loader) FromRows(source string, header []string, rows [][]string) ([]domain.SaleRecord, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{l.columns.Sold, l.columns.ProfitLoss} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	records := make([]domain.SaleRecord, 0, len(rows))
	for i, row := range rows {
		line := i + 2

		get := func(column string) string {
			pos, ok := index[column]
			if !ok || pos >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[pos])
		}

		sold, recognized := ParseSold(get(l.columns.Sold))
		if !recognized {
			logrus.WithFields(logrus.Fields{
				"source": source,
				"line":   line,
				"value":  get(l.columns.Sold),
			}).Warn("Valor de vendido não reconhecido, item considerado não vendido")
		}

		record := domain.SaleRecord{
			ItemTag:    get(l.columns.ItemTag),
			BrandName:  get(l.columns.BrandName),
			Sold:       sold,
			ProfitLoss: l.parseAmount(source, line, l.columns.ProfitLoss, get(l.columns.ProfitLoss)),
			Cost:       l.parseAmount(source, line, l.columns.Cost, get(l.columns.Cost)),
		}

		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"source":  source,
		"records": len(records),
	}).Debug("Registros de vendas carregados")

	return records, nil
}

func (l *Loader) parseAmount(source string, line int, column, raw string) decimal.NullDecimal {
	value := ParseCurrency(raw)
	if !value.Valid && raw != "" {
		logrus.WithFields(logrus.Fields{
			"source": source,
			"line":   line,
			"column": column,
			"value":  raw,
		}).Warn("Valor numérico mal formatado, considerado nulo")
	}
	return value
}

func newCSVReader(r io.Reader) (*csv.Reader, error) {
	buffered := bufio.NewReader(r)

	// BOM UTF-8 gerado por exportações do Excel
	head, err := buffered.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("erro ao ler arquivo: %w", err)
	}
	if len(head) == 0 {
		return nil, ErrEmptyFile
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buffered.Discard(3)
	}

	reader := csv.NewReader(buffered)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	return reader, nil
}
