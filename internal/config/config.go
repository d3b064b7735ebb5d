package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Narrator           Narrator           `mapstructure:",squash"`
	Pricing            Pricing            `mapstructure:",squash"`
	CohortSnapshotSync CohortSnapshotSync `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Narrator configura o serviço externo de narração de insights (API compatível com OpenAI)
type Narrator struct {
	BaseURL        string `mapstructure:"narrator_base_url"`
	APIKey         string `mapstructure:"narrator_api_key"`
	Model          string `mapstructure:"narrator_model"`
	TimeoutSeconds int    `mapstructure:"narrator_timeout_seconds"`
	DailyCap       int    `mapstructure:"narrator_daily_cap"`
	Enabled        bool   `mapstructure:"narrator_enabled"`
}

// Pricing configura os limites do motor de precificação
type Pricing struct {
	MonthlyCalculationLimit int `mapstructure:"pricing_monthly_calculation_limit"`
	MinCohortDeals          int `mapstructure:"pricing_min_cohort_deals"`
	MinDealsForReport       int `mapstructure:"pricing_min_deals_for_report"`
}

type CohortSnapshotSync struct {
	CronSchedule string `mapstructure:"cohort_snapshot_sync_cron"`
	SyncEnabled  bool   `mapstructure:"cohort_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pricing")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do narrador de insights
	viper.SetDefault("NARRATOR_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("NARRATOR_API_KEY", "")
	viper.SetDefault("NARRATOR_MODEL", "gpt-4o-mini")
	viper.SetDefault("NARRATOR_TIMEOUT_SECONDS", 30) // 30 segundos por chamada
	viper.SetDefault("NARRATOR_DAILY_CAP", 20)       // 20 narrativas por usuário por dia
	viper.SetDefault("NARRATOR_ENABLED", false)

	// Defaults do motor de precificação
	viper.SetDefault("PRICING_MONTHLY_CALCULATION_LIMIT", 3) // 3 cálculos por mês no plano gratuito
	viper.SetDefault("PRICING_MIN_COHORT_DEALS", 5)          // mínimo de deals para estatística de coorte
	viper.SetDefault("PRICING_MIN_DEALS_FOR_REPORT", 5)      // mínimo de deals para relatório trimestral

	viper.SetDefault("COHORT_SNAPSHOT_SYNC_CRON", "0 6 * * *")  // Todos os dias às 6h da manhã
	viper.SetDefault("COHORT_SNAPSHOT_SYNC_ENABLED", false)     // Habilitar materialização de coortes
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
