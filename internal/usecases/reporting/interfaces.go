package reporting

import (
	"context"

	"github.com/vfg2006/auction-sales-report/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// SalesSource entrega os registros já separados por mês. A descoberta dos arquivos, planilhas
// ou tabelas fica com a implementação.
type SalesSource interface {
	// HistoricalMonths devolve um conjunto de registros por mês do ciclo histórico
	HistoricalMonths(ctx context.Context) ([]domain.MonthlySales, error)

	// CurrentMonths devolve os dois meses mais recentes
	CurrentMonths(ctx context.Context) ([]domain.MonthlySales, error)
}

// Reporter gera o relatório e mantém o último resultado válido
type Reporter interface {
	// Generate executa o pipeline completo sem alterar o relatório publicado
	Generate(ctx context.Context) (*domain.Report, error)

	// Refresh executa o pipeline e publica o resultado se não houver erro
	Refresh(ctx context.Context) (*domain.Report, error)

	// Latest devolve o último relatório publicado
	Latest() (*domain.Report, error)

	// Status devolve o estado da última execução
	Status() domain.ReportStatus
}
