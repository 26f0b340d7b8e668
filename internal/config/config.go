package config

import (
	"strings"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/utils"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name     string `mapstructure:"NAME"`
		Port     string `mapstructure:"PORT"`
		State    string `mapstructure:"STATE"`
		LogLevel string `mapstructure:"LOG_LEVEL"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	APP_SECRET struct {
		Paseto struct {
			HexKey string `mapstructure:"HEX_KEY"`
		}
	}

	MAILTRAP struct {
		Sandbox struct {
			SandboxURL    string `mapstructure:"SANDBOX_URL"`
			SandboxAPI    string `mapstructure:"SANDBOX_API"`
			SandboxDomain string `mapstructure:"SANDBOX_DOMAIN"`
		}
		API struct {
			MailtrapTokenAPI string `mapstructure:"MAILTRAP_TOKEN_API"`
			MailtrapURL      string `mapstructure:"MAILTRAP_URL"`
			MailtrapDomain   string `mapstructure:"MAILTRAP_DOMAIN"`
		}
	}

	REPORT struct {
		TaskCacheTTL   time.Duration `mapstructure:"TASK_CACHE_TTL"`
		ExportTTL      time.Duration `mapstructure:"EXPORT_TTL"`
		ExportLimitMax int           `mapstructure:"EXPORT_LIMIT_MAX"`
		ExportLimitFor time.Duration `mapstructure:"EXPORT_LIMIT_WINDOW"`
		// Lenient: ein Tag gilt als erledigt, sobald keine Teilaufgabe mehr offen ist.
		Lenient bool `mapstructure:"LENIENT_COMPLETION"`
	}
}

// LoadConfig liest application.yaml aus dem Arbeitsverzeichnis. Eine optionale .env-Datei wird vorher geladen,
// Umgebungsvariablen wie DATABASE_POSTGRES_DSN überschreiben die Datei.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("Keine .env-Datei gefunden, verwende nur Umgebungsvariablen")
	}

	v := viper.New()
	v.SetConfigName("application")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Lesen der Konfigurationsdatei")
		return nil
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Fehler beim Entpacken der Konfiguration")
		return nil
	}

	if config.DATABASE.Postgres.DSN == "" {
		log.Error().Msg("Datenbank-DSN ist nicht konfiguriert")
		return nil
	}

	if config.APP_SECRET.Paseto.HexKey == "" {
		log.Warn().Msg("Kein Paseto-Schlüssel konfiguriert, erzeuge einen flüchtigen Schlüssel")
		config.APP_SECRET.Paseto.HexKey = utils.GenerateSymmetricKey()
	}

	log.Info().Msg("Konfiguration geladen...")
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP.NAME", "arbeitszeit-meister")
	v.SetDefault("APP.PORT", "8080")
	v.SetDefault("APP.STATE", "dev")
	v.SetDefault("APP.LOG_LEVEL", "debug")
	v.SetDefault("DATABASE.REDIS.ADDR", "localhost:6379")
	v.SetDefault("REPORT.TASK_CACHE_TTL", 30*time.Second)
	v.SetDefault("REPORT.EXPORT_TTL", 24*time.Hour)
	v.SetDefault("REPORT.EXPORT_LIMIT_MAX", 5)
	v.SetDefault("REPORT.EXPORT_LIMIT_WINDOW", 10*time.Minute)
	v.SetDefault("REPORT.LENIENT_COMPLETION", false)
}
