package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Working hours in the salon's local time (24h clock).
	WorkingHoursStart int `mapstructure:"WORKING_HOURS_START"`
	WorkingHoursEnd   int `mapstructure:"WORKING_HOURS_END"`

	// Timezone applied when a session carries none.
	DefaultTimezone string `mapstructure:"DEFAULT_TIMEZONE"`

	// Google Calendar configuration.
	CalendarID        string `mapstructure:"CALENDAR_ID"`
	GoogleCredentials string `mapstructure:"GOOGLE_CREDENTIALS"`

	// Google Sheets booking ledger.
	SpreadsheetID string `mapstructure:"SPREADSHEET_ID"`
	SheetRange    string `mapstructure:"SHEET_RANGE"`

	// Gemini API key for the generative fallback responder.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Base URL of this service, used to build product image links.
	StaticBaseURL string `mapstructure:"STATIC_BASE_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("WORKING_HOURS_START", 9)
	viper.SetDefault("WORKING_HOURS_END", 17)
	viper.SetDefault("DEFAULT_TIMEZONE", "Europe/Belgrade")
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_CREDENTIALS", "")
	viper.SetDefault("SPREADSHEET_ID", "")
	viper.SetDefault("SHEET_RANGE", "list!A1")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("STATIC_BASE_URL", "http://localhost:8080")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
