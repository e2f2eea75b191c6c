// Package log configura o logrus do processo e carrega o ID de correlação das requisições
// HTTP até as entradas de log do relatório.
package log

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é o mesmo tipo de logrus.Fields, exposto para quem só importa este pacote
type Fields = logrus.Fields

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// CorrelationIDHeader é devolvido em toda resposta para cruzar logs e chamadas
const CorrelationIDHeader = "X-Correlation-ID"

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Setup configura formato e nível do logrus. Níveis inválidos caem para info.
func Setup(level string) logrus.Level {
	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return logLevel
}

// WithCorrelationID gera um novo ID e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, correlationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	correlationID, _ := ctx.Value(correlationIDKey).(string)
	return correlationID
}

// ForContext devolve uma entrada do logrus com o correlation_id do contexto, quando houver.
// Gerações disparadas pelo cron não têm ID e saem sem o campo.
func ForContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return entry.WithField(string(correlationIDKey), correlationID)
	}
	return entry
}
