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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Realize    Realize    `mapstructure:",squash"`
	Export     Export     `mapstructure:",squash"`
	ExportSync ExportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

// Realize agrupa as configurações da API do Realize (Backstage).
// NetworkSlug é a conta de rede usada na busca de anunciantes.
type Realize struct {
	BaseURL      string `mapstructure:"realize_base_url"`
	TokenURL     string `mapstructure:"realize_token_url"`
	ClientID     string `mapstructure:"realize_client_id"`
	ClientSecret string `mapstructure:"realize_client_secret"`
	NetworkSlug  string `mapstructure:"realize_network_slug"`
	GuiURL       string `mapstructure:"realize_gui_url"`
}

// Export configura o destino dos arquivos XLSX gerados
type Export struct {
	Directory string `mapstructure:"export_directory"`
}

// ExportSync configura o agendador de exportação periódica de relatórios
type ExportSync struct {
	CronSchedule        string `mapstructure:"export_sync_cron"`
	LookbackDays        int    `mapstructure:"export_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"export_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"export_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/realize")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REALIZE_BASE_URL", "https://backstage.taboola.com/backstage")
	viper.SetDefault("REALIZE_TOKEN_URL", "https://backstage.taboola.com/backstage/oauth/token")
	viper.SetDefault("REALIZE_CLIENT_ID", "your_client_id")         // ONLY LOCAL
	viper.SetDefault("REALIZE_CLIENT_SECRET", "your_client_secret") // ONLY LOCAL
	viper.SetDefault("REALIZE_NETWORK_SLUG", "taboola-network")
	viper.SetDefault("REALIZE_GUI_URL", "https://ads.realizeperformance.com")

	viper.SetDefault("EXPORT_DIRECTORY", "")

	// Defaults para exportação periódica de relatórios
	viper.SetDefault("EXPORT_SYNC_CRON", "0 7 * * *")        // Todos os dias às 7h da manhã
	viper.SetDefault("EXPORT_SYNC_LOOKBACK_DAYS", 7)         // 7 dias de dados
	viper.SetDefault("EXPORT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("EXPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
