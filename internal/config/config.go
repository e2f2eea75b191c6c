package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/auction-sales-report/internal/domain"
)

// Backends de origem dos registros de vendas
const (
	SourceBackendCSV      = "csv"
	SourceBackendPostgres = "postgres"
	SourceBackendSheets   = "sheets"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Source        Source        `mapstructure:",squash"`
	Policy        Policy        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Sheets        Sheets        `mapstructure:",squash"`
	ReportRefresh ReportRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Source define de onde vêm os meses históricos e os dois meses do ciclo corrente
type Source struct {
	Backend       string   `mapstructure:"source_backend"`
	HistoricalDir string   `mapstructure:"historical_dir"`
	CurrentFiles  []string `mapstructure:"current_files"`
	CurrentLabels []string `mapstructure:"current_labels"`
}

// Policy contém as constantes de negócio da agregação
type Policy struct {
	UnsoldFee        decimal.Decimal `mapstructure:"unsold_fee"`
	AdjustmentsFile  string          `mapstructure:"adjustments_file"`
	ImageURLTemplate string          `mapstructure:"item_image_url_template"`
}

type Database struct {
	DSN        string `mapstructure:"-"`
	Driver     string `mapstructure:"database_driver"`
	Password   string `mapstructure:"database_password"`
	URL        string `mapstructure:"database_url"`
	User       string `mapstructure:"database_user"`
	SalesTable string `mapstructure:"sales_table"`
}

type Sheets struct {
	SpreadsheetID      string `mapstructure:"google_spreadsheet_id"`
	ServiceAccountJSON string `mapstructure:"google_service_account_json"`
	ServiceAccountFile string `mapstructure:"google_service_account_file"`
}

type ReportRefresh struct {
	CronSchedule string        `mapstructure:"report_refresh_cron"`
	Enabled      bool          `mapstructure:"report_refresh_enabled"`
	Timeout      time.Duration `mapstructure:"report_refresh_timeout"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("SOURCE_BACKEND", SourceBackendCSV)
	viper.SetDefault("HISTORICAL_DIR", "data/2024")
	viper.SetDefault("CURRENT_FILES", "data/january_sales.csv,data/february_sales.csv")
	viper.SetDefault("CURRENT_LABELS", "January_25,February_25")

	viper.SetDefault("UNSOLD_FEE", "-440")                   // Taxa por item não vendido
	viper.SetDefault("ADJUSTMENTS_FILE", "adjustments.yaml") // Ajustes manuais de receita por mês
	viper.SetDefault("ITEM_IMAGE_URL_TEMPLATE", "https://s3.amazonaws.com/storage.j-ports/photographs/%s/thumbnail/1.jpg")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/auction?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("SALES_TABLE", "sale_records")

	viper.SetDefault("GOOGLE_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")

	viper.SetDefault("REPORT_REFRESH_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("REPORT_REFRESH_ENABLED", false)
	viper.SetDefault("REPORT_REFRESH_TIMEOUT", "2m")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			StringToDecimalHookFunc(),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Source.CurrentFiles = trimAll(config.Source.CurrentFiles)
	config.Source.CurrentLabels = canonicalLabels(trimAll(config.Source.CurrentLabels))
	config.Server.AllowedOrigins = trimAll(config.Server.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as combinações de configuração que impedem a geração do relatório
func (c *Config) Validate() error {
	var problems []string

	switch c.Source.Backend {
	case SourceBackendCSV:
		if len(c.Source.CurrentFiles) != len(c.Source.CurrentLabels) {
			problems = append(problems, fmt.Sprintf("CURRENT_FILES tem %d arquivos e CURRENT_LABELS tem %d rótulos", len(c.Source.CurrentFiles), len(c.Source.CurrentLabels)))
		}
	case SourceBackendPostgres:
		if c.Database.SalesTable == "" {
			problems = append(problems, "SALES_TABLE é obrigatório para o backend postgres")
		}
	case SourceBackendSheets:
		if c.Sheets.SpreadsheetID == "" {
			problems = append(problems, "GOOGLE_SPREADSHEET_ID é obrigatório para o backend sheets")
		}
	default:
		problems = append(problems, fmt.Sprintf("SOURCE_BACKEND inválido: %q (use csv, postgres ou sheets)", c.Source.Backend))
	}

	var labelErr error
	for _, label := range c.Source.CurrentLabels {
		parsed, err := domain.ParseMonthLabel(label)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("CURRENT_LABELS: %v", err))
			labelErr = domain.ErrUnknownMonth
		case !parsed.HasYear:
			// sem o ano o mês ficaria na posição do calendário e a ordem do ciclo corrente se perde
			problems = append(problems, fmt.Sprintf("CURRENT_LABELS: %q precisa do sufixo de ano (ex: January_25)", label))
			labelErr = domain.ErrUnknownMonth
		}
	}

	if len(c.Source.CurrentLabels) != 2 {
		problems = append(problems, fmt.Sprintf("CURRENT_LABELS deve ter exatamente 2 rótulos, recebidos %d", len(c.Source.CurrentLabels)))
	}

	if tmpl := c.Policy.ImageURLTemplate; tmpl != "" && strings.Count(tmpl, "%s") != 1 {
		problems = append(problems, "ITEM_IMAGE_URL_TEMPLATE deve conter exatamente um %s")
	}

	if len(problems) > 0 {
		if labelErr != nil {
			return fmt.Errorf("configuração inválida: %s: %w", strings.Join(problems, "; "), labelErr)
		}
		return fmt.Errorf("configuração inválida: %s", strings.Join(problems, "; "))
	}
	return nil
}

// StringToDecimalHookFunc converte valores da configuração em decimal.Decimal
func StringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(decimal.Decimal{}) {
			return data, nil
		}

		switch value := data.(type) {
		case string:
			return decimal.NewFromString(strings.TrimSpace(value))
		case int:
			return decimal.NewFromInt(int64(value)), nil
		case int64:
			return decimal.NewFromInt(value), nil
		case float64:
			return decimal.NewFromFloat(value), nil
		}

		return data, nil
	}
}

// canonicalLabels aplica a grafia canônica ("january_25" -> "January_25"). Rótulos inválidos
// ficam como estão para que Validate os reporte.
func canonicalLabels(labels []string) []string {
	canonical := make([]string, len(labels))
	for i, raw := range labels {
		label, err := domain.ParseMonthLabel(raw)
		if err != nil {
			canonical[i] = raw
			continue
		}
		canonical[i] = label.String()
	}
	return canonical
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			trimmed = append(trimmed, value)
		}
	}
	return trimmed
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
