// Package sheets lê as exportações de vendas de abas de uma planilha Google. Abas com nome de mês
// sem ano (ex: "March") formam o ciclo histórico; as abas do ciclo corrente são buscadas pelos
// rótulos configurados (ex: "January_25"). As demais abas são ignoradas.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/internal/config"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"github.com/vfg2006/auction-sales-report/internal/usecases/loading"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// ErrMissingTab indica que uma aba do ciclo corrente não existe na planilha
var ErrMissingTab = errors.New("aba não encontrada na planilha")

// Source implementa reporting.SalesSource sobre a API do Google Sheets
type Source struct {
	svc           *gsheet.Service
	spreadsheetID string
	loader        *loading.Loader
	currentLabels []string
}

// New autentica com a service account configurada e cria a fonte
func New(ctx context.Context, cfg config.Sheets, loader *loading.Loader, currentLabels []string) (*Source, error) {
	credentialsJSON, err := credentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar serviço do Google Sheets: %w", err)
	}

	return NewWithService(svc, cfg.SpreadsheetID, loader, currentLabels), nil
}

// NewWithService usa um serviço já construído, útil para apontar para outro endpoint
func NewWithService(svc *gsheet.Service, spreadsheetID string, loader *loading.Loader, currentLabels []string) *Source {
	return &Source{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		loader:        loader,
		currentLabels: currentLabels,
	}
}

func credentials(cfg config.Sheets) ([]byte, error) {
	switch {
	case cfg.ServiceAccountJSON != "":
		return []byte(cfg.ServiceAccountJSON), nil
	case cfg.ServiceAccountFile != "":
		data, err := os.ReadFile(cfg.ServiceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo da service account: %w", err)
		}
		return data, nil
	default:
		return nil, errors.New("credenciais ausentes: defina GOOGLE_SERVICE_ACCOUNT_JSON ou GOOGLE_SERVICE_ACCOUNT_FILE")
	}
}

func (s *Source) HistoricalMonths(ctx context.Context) ([]domain.MonthlySales, error) {
	titles, err := s.tabTitles(ctx)
	if err != nil {
		return nil, err
	}

	months := make([]domain.MonthlySales, 0, len(titles))
	for _, title := range titles {
		label, err := domain.ParseMonthLabel(title)
		if err != nil || label.HasYear {
			logrus.WithField("tab", title).Debug("Aba ignorada na leitura histórica")
			continue
		}

		records, err := s.readTab(ctx, title)
		if err != nil {
			return nil, err
		}

		months = append(months, domain.MonthlySales{Label: label.String(), Records: records})
	}

	return months, nil
}

func (s *Source) CurrentMonths(ctx context.Context) ([]domain.MonthlySales, error) {
	titles, err := s.tabTitles(ctx)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(titles))
	for _, title := range titles {
		existing[title] = true
	}

	months := make([]domain.MonthlySales, 0, len(s.currentLabels))
	for _, label := range s.currentLabels {
		if !existing[label] {
			return nil, fmt.Errorf("%w: %s", ErrMissingTab, label)
		}

		records, err := s.readTab(ctx, label)
		if err != nil {
			return nil, err
		}

		months = append(months, domain.MonthlySales{Label: label, Records: records})
	}

	return months, nil
}

func (s *Source) tabTitles(ctx context.Context) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar abas da planilha: %w", err)
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		if sheet.Properties == nil {
			continue
		}
		titles = append(titles, sheet.Properties.Title)
	}

	return titles, nil
}

func (s *Source) readTab(ctx context.Context, title string) ([]domain.SaleRecord, error) {
	rng := fmt.Sprintf("'%s'", strings.ReplaceAll(title, "'", "''"))
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler aba %s: %w", title, err)
	}

	header, rows := SplitValues(resp.Values)
	if header == nil {
		return nil, fmt.Errorf("aba %s: %w", title, loading.ErrEmptyFile)
	}

	records, err := s.loader.FromRows(title, header, rows)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tab":     title,
		"records": len(records),
	}).Info("Aba da planilha carregada")

	return records, nil
}

// SplitValues converte a grade da API em cabeçalho e linhas de texto
func SplitValues(values [][]interface{}) (header []string, rows [][]string) {
	if len(values) == 0 {
		return nil, nil
	}

	header = toStrings(values[0])
	rows = make([][]string, 0, len(values)-1)
	for _, row := range values[1:] {
		rows = append(rows, toStrings(row))
	}

	return header, rows
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		if cell == nil {
			continue
		}
		out[i] = strings.TrimSpace(fmt.Sprint(cell))
	}
	return out
}
