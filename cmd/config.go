package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	MongoURI         string
	MongoDatabase    string
	JWTSecret        string
	JWTIssuer        string
	StripeSecretKey  string
	StripeAPIURL     string
	RabbitMQURL      string
	RabbitMQExchange string
	ReconcileCron    string
	CORSOrigins      string
	OpenAPIValidate  bool
	LogLevel         string
}

// LoadConfig reads the environment after loading dotenvPath. A missing dotenv
// file is not an error; containers inject the environment directly.
func LoadConfig(dotenvPath string) (Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	return Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT", "5000"),
		DBHost:           goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:           goDotEnvVariable("DB_PORT", "5432"),
		DBUser:           goDotEnvVariable("DB_USER", ""),
		DBPassword:       goDotEnvVariable("DB_PASSWORD", ""),
		DBName:           goDotEnvVariable("DB_NAME", "profast"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE", "disable"),
		MongoURI:         goDotEnvVariable("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    goDotEnvVariable("MONGO_DATABASE", "parcelDB"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET", ""),
		JWTIssuer:        goDotEnvVariable("JWT_ISSUER", ""),
		StripeSecretKey:  goDotEnvVariable("STRIPE_SECRET_KEY", ""),
		StripeAPIURL:     goDotEnvVariable("STRIPE_API_URL", ""),
		RabbitMQURL:      goDotEnvVariable("RABBITMQ_URL", ""),
		RabbitMQExchange: goDotEnvVariable("RABBITMQ_EXCHANGE", "parcel.events"),
		ReconcileCron:    goDotEnvVariable("RECONCILE_SCHEDULE", ""),
		CORSOrigins:      goDotEnvVariable("CORS_ORIGINS", ""),
		OpenAPIValidate:  goDotEnvVariable("OPENAPI_VALIDATE", "") == "true",
		LogLevel:         goDotEnvVariable("LOG_LEVEL", "info"),
	}, nil
}

func goDotEnvVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// PostgresDSN builds a key/value connection string for the gorm postgres driver.
func (c Config) PostgresDSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, quoteDSN(c.DBPassword), c.DBName, sslMode)
}

// PostgresURL builds the URL form, used where a driver needs a database other
// than DBName.
func (c Config) PostgresURL(database string) string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + database,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// CORSOriginList splits CORS_ORIGINS on commas. Empty means any origin.
func (c Config) CORSOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func quoteDSN(v string) string {
	if v == "" || strings.ContainsAny(v, ` '\`) {
		return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
	}
	return v
}
