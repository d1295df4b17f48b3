package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/lcorreia/bankledger/internal/domain"
)

// Config stores all configuration for the application. Values come from
// environment variables or a local .env file; every field has a default
// so the server runs with no configuration at all.
type Config struct {
	ServerPort            string `mapstructure:"SERVER_PORT"`
	MonthlyUpdateSchedule string `mapstructure:"MONTHLY_UPDATE_SCHEDULE"`

	CheckingMonthlyFee     string `mapstructure:"CHECKING_MONTHLY_FEE"`
	CheckingOverdraftLimit string `mapstructure:"CHECKING_OVERDRAFT_LIMIT"`
	SavingsInterestRate    string `mapstructure:"SAVINGS_INTEREST_RATE"`
	SavingsMinimumBalance  string `mapstructure:"SAVINGS_MINIMUM_BALANCE"`
}

// LoadConfig reads configuration from a .env file or environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	// First day of every month at midnight.
	viper.SetDefault("MONTHLY_UPDATE_SCHEDULE", "0 0 1 * *")
	viper.SetDefault("CHECKING_MONTHLY_FEE", "10.00")
	viper.SetDefault("CHECKING_OVERDRAFT_LIMIT", "100.00")
	viper.SetDefault("SAVINGS_INTEREST_RATE", "0.05")
	viper.SetDefault("SAVINGS_MINIMUM_BALANCE", "100.00")

	// Bind envs explicitly so containers pick them up reliably
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("MONTHLY_UPDATE_SCHEDULE")
	_ = viper.BindEnv("CHECKING_MONTHLY_FEE")
	_ = viper.BindEnv("CHECKING_OVERDRAFT_LIMIT")
	_ = viper.BindEnv("SAVINGS_INTEREST_RATE")
	_ = viper.BindEnv("SAVINGS_MINIMUM_BALANCE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Error reading config file: %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// CheckingTerms parses the configured checking terms.
func (c *Config) CheckingTerms() (domain.CheckingTerms, error) {
	fee, err := decimal.NewFromString(c.CheckingMonthlyFee)
	if err != nil {
		return domain.CheckingTerms{}, fmt.Errorf("invalid CHECKING_MONTHLY_FEE %q: %w", c.CheckingMonthlyFee, err)
	}
	overdraft, err := decimal.NewFromString(c.CheckingOverdraftLimit)
	if err != nil {
		return domain.CheckingTerms{}, fmt.Errorf("invalid CHECKING_OVERDRAFT_LIMIT %q: %w", c.CheckingOverdraftLimit, err)
	}
	return domain.CheckingTerms{MonthlyFee: fee, OverdraftLimit: overdraft}, nil
}

// SavingsTerms parses the configured savings terms.
func (c *Config) SavingsTerms() (domain.SavingsTerms, error) {
	rate, err := decimal.NewFromString(c.SavingsInterestRate)
	if err != nil {
		return domain.SavingsTerms{}, fmt.Errorf("invalid SAVINGS_INTEREST_RATE %q: %w", c.SavingsInterestRate, err)
	}
	minimum, err := decimal.NewFromString(c.SavingsMinimumBalance)
	if err != nil {
		return domain.SavingsTerms{}, fmt.Errorf("invalid SAVINGS_MINIMUM_BALANCE %q: %w", c.SavingsMinimumBalance, err)
	}
	return domain.SavingsTerms{InterestRate: rate, MinimumInitialBalance: minimum}, nil
}
