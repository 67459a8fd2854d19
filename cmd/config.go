package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"forwarding/internal/adapters/out/jwtcodec"
	"forwarding/internal/jobs"
	"forwarding/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret      string
	JWTIssuer      string
	TokenTTL       time.Duration
	BcryptCost     int
	RequestTimeout time.Duration

	RabbitMQURL         string
	OrderEventsExchange string

	BootstrapAdminUsername string
	BootstrapAdminPassword string

	CarrierExpirySchedule string
	CarrierExpiryWindow   time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_ISSUER", "forwarding")
	v.SetDefault("TOKEN_TTL", jwtcodec.DefaultTTL)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("ORDER_EVENTS_EXCHANGE", "forwarding.orders")
	v.SetDefault("CARRIER_EXPIRY_SCHEDULE", jobs.DefaultCarrierExpirySchedule)
	v.SetDefault("CARRIER_EXPIRY_WINDOW", jobs.DefaultCarrierExpiryWindow)
}

// LoadConfig reads an optional .env file, then the file named by CONFIG_FILE
// if set, then the environment. Environment variables win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		HTTPPort:   v.GetString("HTTP_PORT"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSslMode:  v.GetString("DB_SSLMODE"),

		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		BcryptCost:     v.GetInt("BCRYPT_COST"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),

		RabbitMQURL:         v.GetString("RABBITMQ_URL"),
		OrderEventsExchange: v.GetString("ORDER_EVENTS_EXCHANGE"),

		BootstrapAdminUsername: strings.TrimSpace(v.GetString("BOOTSTRAP_ADMIN_USERNAME")),
		BootstrapAdminPassword: v.GetString("BOOTSTRAP_ADMIN_PASSWORD"),

		CarrierExpirySchedule: v.GetString("CARRIER_EXPIRY_SCHEDULE"),
		CarrierExpiryWindow:   v.GetDuration("CARRIER_EXPIRY_WINDOW"),
	}

	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error
	required := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(name))
		}
	}
	invalid := func(name string, cause error) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(name, cause))
	}

	required("HTTP_PORT", c.HTTPPort)
	required("DB_HOST", c.DBHost)
	required("DB_PORT", c.DBPort)
	required("DB_USER", c.DBUser)
	required("DB_NAME", c.DBName)

	switch {
	case c.JWTSecret == "":
		required("JWT_SECRET", c.JWTSecret)
	case len(c.JWTSecret) < jwtcodec.MinKeyLength:
		invalid("JWT_SECRET", jwtcodec.ErrSigningKeyTooShort)
	}
	if c.TokenTTL <= 0 {
		invalid("TOKEN_TTL", jwtcodec.ErrTTLIsInvalid)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		invalid("BCRYPT_COST", fmt.Errorf("%d is outside [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.RequestTimeout <= 0 {
		invalid("REQUEST_TIMEOUT", errors.New("must be positive"))
	}
	if c.CarrierExpiryWindow <= 0 {
		invalid("CARRIER_EXPIRY_WINDOW", errors.New("must be positive"))
	}
	if c.RabbitMQURL != "" {
		required("ORDER_EVENTS_EXCHANGE", c.OrderEventsExchange)
	}
	if (c.BootstrapAdminUsername == "") != (c.BootstrapAdminPassword == "") {
		invalid("BOOTSTRAP_ADMIN_USERNAME", errors.New("username and password must be set together"))
	}

	return errors.Join(problems...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// HasBootstrapAdmin reports whether an admin account is created at startup.
func (c Config) HasBootstrapAdmin() bool {
	return c.BootstrapAdminUsername != ""
}
