// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	TokenMaker          string        `mapstructure:"TOKEN_MAKER"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	Environement        string        `mapstructure:"GO_ENV"`
	CORSAllowedOrigins  string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	AccountLedgerURL    string        `mapstructure:"ACCOUNT_LEDGER_URL"`
	TransferLedgerURL   string        `mapstructure:"TRANSFER_LEDGER_URL"`
	CardLedgerURL       string        `mapstructure:"CARD_LEDGER_URL"`
	LoanLedgerURL       string        `mapstructure:"LOAN_LEDGER_URL"`
	RatesURL            string        `mapstructure:"RATES_URL"`
	LedgerTimeout       time.Duration `mapstructure:"LEDGER_TIMEOUT"`
}

// AllowedOrigins splits the comma separated CORS origins.
func (c Config) AllowedOrigins() []string {
	var origins []string

	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:5000")
	v.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)
	v.SetDefault("LEDGER_TIMEOUT", 10*time.Second)
	v.SetDefault("TOKEN_MAKER", "paseto")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
