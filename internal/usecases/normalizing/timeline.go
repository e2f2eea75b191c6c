// Package normalizing monta a série mensal de receita sobre o ciclo fixo de 12 meses
package normalizing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/auction-sales-report/internal/domain"
)

// ErrDuplicateMonth é retornado quando o mesmo rótulo aparece duas vezes no mesmo conjunto
var ErrDuplicateMonth = errors.New("mês duplicado")

// sortKey posiciona os meses do calendário pelo índice no ciclo e os meses do ciclo corrente
// depois de dezembro, em ordem cronológica entre si.
type sortKey struct {
	cycle int
	rank  int
}

// BuildTimeline combina os agregados históricos e os do ciclo corrente em uma série ordenada.
// Meses do calendário sem dados entram com receita zero. Rótulos históricos que não são um
// dos 12 meses, ou rótulos correntes sem sufixo de ano, interrompem a montagem com erro.
func BuildTimeline(historical, current []domain.MonthlyAggregate) (domain.Timeline, error) {
	revenues := make(map[string]decimal.Decimal, len(domain.CalendarMonths)+len(current))
	keys := make(map[string]sortKey, len(domain.CalendarMonths)+len(current))

	for _, aggregate := range historical {
		label, err := domain.ParseMonthLabel(aggregate.Label)
		if err != nil {
			return domain.Timeline{}, fmt.Errorf("rótulo histórico inválido: %w", err)
		}
		if label.HasYear {
			return domain.Timeline{}, fmt.Errorf("rótulo histórico inválido: %w: %q não é um mês do ciclo fixo", domain.ErrUnknownMonth, aggregate.Label)
		}

		name := label.String()
		if _, exists := revenues[name]; exists {
			return domain.Timeline{}, fmt.Errorf("%w: %s", ErrDuplicateMonth, name)
		}

		revenues[name] = aggregate.TotalRevenue
		keys[name] = sortKey{cycle: label.CycleIndex()}
	}

	currentLabels := make([]domain.MonthLabel, 0, len(current))
	currentRevenues := make(map[string]decimal.Decimal, len(current))
	for _, aggregate := range current {
		label, err := domain.ParseMonthLabel(aggregate.Label)
		if err != nil {
			return domain.Timeline{}, fmt.Errorf("rótulo do ciclo corrente inválido: %w", err)
		}
		if !label.HasYear {
			return domain.Timeline{}, fmt.Errorf("rótulo do ciclo corrente inválido: %w: %q precisa do sufixo de ano (ex: January_25)", domain.ErrUnknownMonth, aggregate.Label)
		}

		name := label.String()
		if _, exists := currentRevenues[name]; exists {
			return domain.Timeline{}, fmt.Errorf("%w: %s", ErrDuplicateMonth, name)
		}

		currentRevenues[name] = aggregate.TotalRevenue
		currentLabels = append(currentLabels, label)
	}

	sort.SliceStable(currentLabels, func(i, j int) bool {
		return currentLabels[i].Before(currentLabels[j])
	})

	// rótulos com ano nunca colidem com os 12 meses do ciclo fixo
	for rank, label := range currentLabels {
		name := label.String()
		revenues[name] = currentRevenues[name]
		keys[name] = sortKey{cycle: len(domain.CalendarMonths), rank: rank}
	}

	for _, month := range domain.CalendarMonths {
		name := month.String()
		if _, exists := revenues[name]; !exists {
			revenues[name] = decimal.Zero
			keys[name] = sortKey{cycle: int(month) - 1}
		}
	}

	labels := make([]string, 0, len(revenues))
	for name := range revenues {
		labels = append(labels, name)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, b := keys[labels[i]], keys[labels[j]]
		if a.cycle != b.cycle {
			return a.cycle < b.cycle
		}
		return a.rank < b.rank
	})

	timeline := domain.Timeline{
		Entries:    make([]domain.TimelineEntry, 0, len(labels)),
		MinRevenue: decimal.Zero,
		MaxRevenue: decimal.Zero,
	}
	for i, name := range labels {
		revenue := revenues[name]
		timeline.Entries = append(timeline.Entries, domain.TimelineEntry{
			Label:        name,
			TotalRevenue: revenue,
			CurrentCycle: keys[name].cycle == len(domain.CalendarMonths),
		})

		if i == 0 || revenue.LessThan(timeline.MinRevenue) {
			timeline.MinRevenue = revenue
		}
		if i == 0 || revenue.GreaterThan(timeline.MaxRevenue) {
			timeline.MaxRevenue = revenue
		}
	}

	return timeline, nil
}
