// Package csvdir lê os meses históricos de um diretório de exportações CSV e os dois meses
// correntes de arquivos explícitos
package csvdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"github.com/vfg2006/auction-sales-report/internal/usecases/loading"
)

// Source implementa reporting.SalesSource sobre o sistema de arquivos
type Source struct {
	loader        *loading.Loader
	historicalDir string
	currentFiles  []string
	currentLabels []string
}

// New cria a fonte. currentFiles e currentLabels são pareados por posição.
func New(loader *loading.Loader, historicalDir string, currentFiles, currentLabels []string) (*Source, error) {
	if len(currentFiles) != len(currentLabels) {
		return nil, fmt.Errorf("csvdir: %d arquivos correntes para %d rótulos", len(currentFiles), len(currentLabels))
	}

	return &Source{
		loader:        loader,
		historicalDir: historicalDir,
		currentFiles:  currentFiles,
		currentLabels: currentLabels,
	}, nil
}

// HistoricalMonths lê todos os .csv do diretório histórico, em ordem de nome de arquivo.
// O mês vem do segundo segmento do nome: "eco_march_2024.csv" -> "March".
func (s *Source) HistoricalMonths(ctx context.Context) ([]domain.MonthlySales, error) {
	if s.historicalDir == "" {
		return []domain.MonthlySales{}, nil
	}

	entries, err := os.ReadDir(s.historicalDir)
	if err != nil {
		return nil, fmt.Errorf("csvdir: erro ao listar diretório histórico %s: %w", s.historicalDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	months := make([]domain.MonthlySales, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		label, err := MonthFromFileName(name)
		if err != nil {
			return nil, err
		}

		records, err := s.loader.LoadFile(filepath.Join(s.historicalDir, name))
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"file":    name,
			"month":   label,
			"records": len(records),
		}).Info("Mês histórico carregado")

		months = append(months, domain.MonthlySales{Label: label, Records: records})
	}

	return months, nil
}

// CurrentMonths lê os arquivos do ciclo corrente com os rótulos configurados
func (s *Source) CurrentMonths(ctx context.Context) ([]domain.MonthlySales, error) {
	months := make([]domain.MonthlySales, 0, len(s.currentFiles))
	for i, path := range s.currentFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := s.loader.LoadFile(path)
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"file":    path,
			"month":   s.currentLabels[i],
			"records": len(records),
		}).Info("Mês do ciclo corrente carregado")

		months = append(months, domain.MonthlySales{Label: s.currentLabels[i], Records: records})
	}

	return months, nil
}

// MonthFromFileName extrai o mês do nome do arquivo. Nomes fora da convenção ou com mês
// desconhecido resultam em erro.
func MonthFromFileName(name string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return "", fmt.Errorf("csvdir: %w: nome de arquivo fora da convenção <prefixo>_<mês>: %q", domain.ErrUnknownMonth, name)
	}

	label, err := domain.ParseMonthLabel(parts[1])
	if err != nil {
		return "", fmt.Errorf("csvdir: arquivo %q: %w", name, err)
	}

	return label.String(), nil
}
