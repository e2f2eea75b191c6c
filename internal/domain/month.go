// Package domain contém as estruturas de dados do relatório de vendas em leilão
package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownMonth é retornado quando um rótulo não corresponde a nenhum dos 12 meses do calendário
var ErrUnknownMonth = errors.New("mês do calendário desconhecido")

// CalendarMonths é o ciclo fixo de 12 meses, na ordem do calendário
var CalendarMonths = []time.Month{
	time.January, time.February, time.March, time.April,
	time.May, time.June, time.July, time.August,
	time.September, time.October, time.November, time.December,
}

var titleCaser = cases.Title(language.English)

// MonthLabel identifica um mês processado. Sem sufixo de ano (ex: "March") pertence ao ciclo
// histórico; com sufixo de dois dígitos (ex: "January_25") é um mês do ciclo corrente.
type MonthLabel struct {
	Month      time.Month
	YearSuffix int
	HasYear    bool
}

// ParseMonthLabel interpreta rótulos como "march", "March" ou "January_25"
func ParseMonthLabel(raw string) (MonthLabel, error) {
	label := strings.TrimSpace(raw)
	name, suffix, hasSuffix := strings.Cut(label, "_")

	month, ok := monthByName(name)
	if !ok {
		return MonthLabel{}, fmt.Errorf("%w: %q", ErrUnknownMonth, raw)
	}

	if !hasSuffix {
		return MonthLabel{Month: month}, nil
	}

	if len(suffix) != 2 {
		return MonthLabel{}, fmt.Errorf("%w: sufixo de ano deve ter dois dígitos em %q", ErrUnknownMonth, raw)
	}
	year, err := strconv.Atoi(suffix)
	if err != nil {
		return MonthLabel{}, fmt.Errorf("%w: sufixo de ano inválido em %q", ErrUnknownMonth, raw)
	}

	return MonthLabel{Month: month, YearSuffix: year, HasYear: true}, nil
}

// NormalizeMonthName aplica title case a um nome de mês ("february" -> "February")
func NormalizeMonthName(name string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(name)))
}

func monthByName(name string) (time.Month, bool) {
	normalized := NormalizeMonthName(name)
	for _, m := range CalendarMonths {
		if m.String() == normalized {
			return m, true
		}
	}
	return 0, false
}

// String devolve o rótulo canônico ("March", "January_25")
func (l MonthLabel) String() string {
	if !l.HasYear {
		return l.Month.String()
	}
	return fmt.Sprintf("%s_%02d", l.Month.String(), l.YearSuffix)
}

// Before compara cronologicamente dois rótulos
func (l MonthLabel) Before(other MonthLabel) bool {
	if l.YearSuffix != other.YearSuffix {
		return l.YearSuffix < other.YearSuffix
	}
	return l.Month < other.Month
}

// CycleIndex é a posição do mês no ciclo de 12 meses (0 = janeiro)
func (l MonthLabel) CycleIndex() int {
	return int(l.Month) - 1
}
