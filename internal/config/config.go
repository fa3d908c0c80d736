package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Dataset Dataset `mapstructure:",squash"`
	Report  Report  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Paths              []string      `mapstructure:"dataset_paths"`
	RefreshCron        string        `mapstructure:"dataset_refresh_cron"`
	RefreshEnabled     bool          `mapstructure:"dataset_refresh_enabled"`
	MaxConcurrentLoads int           `mapstructure:"dataset_max_concurrent_loads"`
	FetchTimeout       time.Duration `mapstructure:"dataset_fetch_timeout"`
	AccessToken        string        `mapstructure:"dataset_access_token"`
}

type Report struct {
	CacheTTL       time.Duration `mapstructure:"report_cache_ttl"`
	PreviewRows    int           `mapstructure:"report_preview_rows"`
	MaxUploadBytes int64         `mapstructure:"report_max_upload_bytes"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("DATASET_PATHS", "monthly_product_sales.csv")
	v.SetDefault("DATASET_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	v.SetDefault("DATASET_REFRESH_ENABLED", false)
	v.SetDefault("DATASET_MAX_CONCURRENT_LOADS", 3)
	v.SetDefault("DATASET_FETCH_TIMEOUT", "30s") // Datasets em http(s)
	v.SetDefault("DATASET_ACCESS_TOKEN", "")

	v.SetDefault("REPORT_CACHE_TTL", "1h")
	v.SetDefault("REPORT_PREVIEW_ROWS", 5)
	v.SetDefault("REPORT_MAX_UPLOAD_BYTES", 10<<20) // 10 MiB
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode(v)
}

// decode converte as chaves do viper na struct de configuração
func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	// Todas as chaves têm default, então AutomaticEnv consegue sobrescrevê-las no Unmarshal
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Dataset.Paths = cleanList(config.Dataset.Paths)
	config.Server.AllowedOrigins = cleanList(config.Server.AllowedOrigins)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate valida a configuração e retorna todos os problemas encontrados
func (c *Config) Validate() error {
	var problems []string

	if len(c.Dataset.Paths) == 0 {
		problems = append(problems, "DATASET_PATHS must list at least one CSV file")
	}

	if c.Dataset.MaxConcurrentLoads <= 0 {
		problems = append(problems, fmt.Sprintf("DATASET_MAX_CONCURRENT_LOADS must be positive, got %d", c.Dataset.MaxConcurrentLoads))
	}

	if c.Dataset.FetchTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("DATASET_FETCH_TIMEOUT must be positive, got %s", c.Dataset.FetchTimeout))
	}

	if c.Report.PreviewRows < 0 {
		problems = append(problems, fmt.Sprintf("REPORT_PREVIEW_ROWS must not be negative, got %d", c.Report.PreviewRows))
	}

	if c.Report.CacheTTL <= 0 {
		problems = append(problems, fmt.Sprintf("REPORT_CACHE_TTL must be positive, got %s", c.Report.CacheTTL))
	}

	if c.Report.MaxUploadBytes <= 0 {
		problems = append(problems, fmt.Sprintf("REPORT_MAX_UPLOAD_BYTES must be positive, got %d", c.Report.MaxUploadBytes))
	}

	if len(problems) > 0 {
		return errors.New("config: " + strings.Join(problems, "; "))
	}

	return nil
}

// cleanList remove espaços e itens vazios de listas separadas por vírgula
func cleanList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
