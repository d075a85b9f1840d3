package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system:
// where the payment dataset lives, how it is analysed, the HTTP server and the
// Postgres database connection details.
//
// Example ENV equivalent:
//
//	DATA_DIR=./dados/
//	DATA_FILE=bolsa_familia.parquet
//	CHART_FILE=bolsa_familia.png
//	TOP_K=12
//	QUANTILE_METHOD=weibull
//	FENCE_COEF=1.5
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=bfpulse
type Config struct {
	Data     DataConfig     // Dataset location
	Analysis AnalysisConfig // Statistics and ranking parameters
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
}

// DataConfig points to the Parquet dataset and the chart output.
type DataConfig struct {
	Dir       string // Directory holding the dataset (e.g., "./dados/")
	File      string // Parquet file name inside Dir
	ChartFile string // PNG file name inside Dir
}

// Path returns the full path of the Parquet dataset.
func (d DataConfig) Path() string { return filepath.Join(d.Dir, d.File) }

// ChartPath returns the full path of the rendered chart.
func (d DataConfig) ChartPath() string { return filepath.Join(d.Dir, d.ChartFile) }

// AnalysisConfig holds the knobs of the statistics core.
//
// Fields:
//   - TopK: how many states are kept in the ranking (default 12).
//   - QuantileMethod: plotting-position convention used for quartiles (default "weibull").
//   - FenceCoef: IQR multiplier used for the outlier fences (default 1.5).
type AnalysisConfig struct {
	TopK           int
	QuantileMethod string
	FenceCoef      float64
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("DATA_DIR", "./dados/")
	viper.SetDefault("DATA_FILE", "bolsa_familia.parquet")
	viper.SetDefault("CHART_FILE", "bolsa_familia.png")

	viper.SetDefault("TOP_K", 12)
	viper.SetDefault("QUANTILE_METHOD", "weibull")
	viper.SetDefault("FENCE_COEF", 1.5)

	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "bfpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Data: DataConfig{
			Dir:       viper.GetString("DATA_DIR"),
			File:      viper.GetString("DATA_FILE"),
			ChartFile: viper.GetString("CHART_FILE"),
		},
		Analysis: AnalysisConfig{
			TopK:           viper.GetInt("TOP_K"),
			QuantileMethod: viper.GetString("QUANTILE_METHOD"),
			FenceCoef:      viper.GetFloat64("FENCE_COEF"),
		},
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the PostgreSQL connection string used by database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing or out of range.
func validateConfig() {
	if problems := AppConfig.problems(); len(problems) > 0 {
		log.Fatalf("❌ Missing or invalid configuration: %v\n", problems)
	}
}

// problems lists every missing or invalid key of the configuration.
func (c Config) problems() []string {
	var missing []string

	if c.Data.Dir == "" {
		missing = append(missing, "DATA_DIR")
	}
	if c.Data.File == "" {
		missing = append(missing, "DATA_FILE")
	}
	if c.Data.ChartFile == "" {
		missing = append(missing, "CHART_FILE")
	}
	if c.Analysis.TopK < 1 {
		missing = append(missing, "TOP_K")
	}
	if c.Analysis.QuantileMethod == "" {
		missing = append(missing, "QUANTILE_METHOD")
	}
	if c.Analysis.FenceCoef <= 0 {
		missing = append(missing, "FENCE_COEF")
	}
	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if c.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if c.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if c.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if c.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	return missing
}
