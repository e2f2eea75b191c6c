package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/auction-sales-report/internal/domain"
	"gopkg.in/yaml.v2"
)

// adjustmentsFile é o formato do arquivo de ajustes manuais:
//
//	adjustments:
//	  - month: February_25
//	    amount: 880
//	    reason: dois itens isentos da taxa de não vendido
type adjustmentsFile struct {
	Adjustments []adjustmentEntry `yaml:"adjustments"`
}

type adjustmentEntry struct {
	Month  string      `yaml:"month"`
	Amount yamlDecimal `yaml:"amount"`
	Reason string      `yaml:"reason"`
}

// yamlDecimal aceita valores numéricos ou strings ("880", 880, -12.5)
type yamlDecimal struct {
	decimal.Decimal
	set bool
}

func (d *yamlDecimal) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	value, err := decimal.NewFromString(strings.TrimSpace(fmt.Sprint(raw)))
	if err != nil {
		return fmt.Errorf("valor de ajuste inválido %v: %w", raw, err)
	}

	d.Decimal = value
	d.set = true
	return nil
}

// LoadAdjustments lê o arquivo de ajustes. Arquivo inexistente significa nenhum ajuste.
func LoadAdjustments(path string) ([]domain.Adjustment, error) {
	if path == "" {
		return []domain.Adjustment{}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logrus.WithField("path", path).Warn("Arquivo de ajustes não encontrado, nenhum ajuste será aplicado")
		return []domain.Adjustment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de ajustes %s: %w", path, err)
	}

	return ParseAdjustments(data)
}

// ParseAdjustments valida e normaliza os ajustes declarados
func ParseAdjustments(data []byte) ([]domain.Adjustment, error) {
	var file adjustmentsFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("erro ao interpretar arquivo de ajustes: %w", err)
	}

	adjustments := make([]domain.Adjustment, 0, len(file.Adjustments))
	for i, entry := range file.Adjustments {
		label, err := domain.ParseMonthLabel(entry.Month)
		if err != nil {
			return nil, fmt.Errorf("ajuste %d: %w", i+1, err)
		}
		if !entry.Amount.set {
			return nil, fmt.Errorf("ajuste %d (%s): valor ausente", i+1, label)
		}
		if strings.TrimSpace(entry.Reason) == "" {
			return nil, fmt.Errorf("ajuste %d (%s): motivo é obrigatório", i+1, label)
		}

		adjustments = append(adjustments, domain.Adjustment{
			Month:  label.String(),
			Amount: entry.Amount.Decimal,
			Reason: strings.TrimSpace(entry.Reason),
		})
	}

	return adjustments, nil
}

// BuildPolicy monta a política de agregação a partir da configuração e do arquivo de ajustes
func BuildPolicy(cfg *Config) (domain.Policy, error) {
	adjustments, err := LoadAdjustments(cfg.Policy.AdjustmentsFile)
	if err != nil {
		return domain.Policy{}, err
	}

	logrus.WithFields(logrus.Fields{
		"unsold_fee":  cfg.Policy.UnsoldFee.String(),
		"adjustments": len(adjustments),
	}).Info("Política de agregação carregada")

	return domain.Policy{
		UnsoldFee:        cfg.Policy.UnsoldFee,
		Adjustments:      adjustments,
		ImageURLTemplate: cfg.Policy.ImageURLTemplate,
	}, nil
}
