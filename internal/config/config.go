package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Dataset       Dataset       `mapstructure:",squash"`
	DatasetReload DatasetReload `mapstructure:",squash"`
	LLM           LLM           `mapstructure:",squash"`
	Chat          Chat          `mapstructure:",squash"`
}

type App struct {
	LogLevel       string `mapstructure:"log_level"`
	DashboardTitle string `mapstructure:"dashboard_title"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Folder       string `mapstructure:"dataset_folder"`
	BusinessFile string `mapstructure:"dataset_business_file"`
	FacebookFile string `mapstructure:"dataset_facebook_file"`
	GoogleFile   string `mapstructure:"dataset_google_file"`
	TikTokFile   string `mapstructure:"dataset_tiktok_file"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type LLM struct {
	GoogleAPIKey string        `mapstructure:"google_api_key"`
	Model        string        `mapstructure:"llm_model"`
	MaxTokens    int           `mapstructure:"llm_max_tokens"`
	Temperature  float64       `mapstructure:"llm_temperature"`
	Timeout      time.Duration `mapstructure:"llm_timeout"`
}

type Chat struct {
	RatePerMinute int `mapstructure:"chat_rate_per_minute"`
	MaxMessages   int `mapstructure:"chat_max_messages"`
}

// Enabled indica se há chave configurada para o modelo
func (l LLM) Enabled() bool {
	return strings.TrimSpace(l.GoogleAPIKey) != ""
}

func (d Dataset) BusinessPath() string {
	return filepath.Join(d.Folder, d.BusinessFile)
}

// PlatformPaths devolve o caminho do CSV de cada plataforma
func (d Dataset) PlatformPaths() map[domain.Platform]string {
	return map[domain.Platform]string{
		domain.PlatformFacebook: filepath.Join(d.Folder, d.FacebookFile),
		domain.PlatformGoogle:   filepath.Join(d.Folder, d.GoogleFile),
		domain.PlatformTikTok:   filepath.Join(d.Folder, d.TikTokFile),
	}
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("DASHBOARD_TITLE", "Marketing Intelligence Dashboard")

	v.SetDefault("DATASET_FOLDER", "dataset")
	v.SetDefault("DATASET_BUSINESS_FILE", "business.csv")
	v.SetDefault("DATASET_FACEBOOK_FILE", "Facebook.csv")
	v.SetDefault("DATASET_GOOGLE_FILE", "Google.csv")
	v.SetDefault("DATASET_TIKTOK_FILE", "TikTok.csv")

	v.SetDefault("DATASET_RELOAD_CRON", "*/30 * * * *") // A cada 30 minutos
	v.SetDefault("DATASET_RELOAD_ENABLED", false)

	v.SetDefault("GOOGLE_API_KEY", "")
	v.SetDefault("LLM_MODEL", "gemini-2.5-flash")
	v.SetDefault("LLM_MAX_TOKENS", 1000)
	v.SetDefault("LLM_TEMPERATURE", 0.7)
	v.SetDefault("LLM_TIMEOUT", "60s")

	v.SetDefault("CHAT_RATE_PER_MINUTE", 10)
	v.SetDefault("CHAT_MAX_MESSAGES", 50)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("config: .env not read by viper, using environment only: ", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	// AutomaticEnv não enxerga chaves sem default no Unmarshal, por isso todas têm default
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	for i, origin := range config.Server.CorsAllowedOrigins {
		config.Server.CorsAllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: loaded .env from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found")
}
