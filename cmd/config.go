package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix         = "LGR"
	defaultLedgerFile = "transactions.csv"
	defaultCurrency   = "USD"
)

// settings are the resolved application settings.
type settings struct {
	LedgerFile string
	Currency   string
	Verbose    bool
}

// newConfig creates the configuration layer: defaults, then an optional lgr.yaml file,
// then LGR_* environment variables.
func newConfig() (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("ledger_file", defaultLedgerFile)
	v.SetDefault("currency", defaultCurrency)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName("lgr")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/lgr")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

// loadSettings resolves the settings. Command line flags win over the configuration.
func loadSettings() (settings, error) {
	v, err := newConfig()
	if err != nil {
		return settings{}, err
	}
	s := settings{
		LedgerFile: v.GetString("ledger_file"),
		Currency:   v.GetString("currency"),
		Verbose:    v.GetBool("verbose"),
	}
	if *ledgerFile != "" {
		s.LedgerFile = *ledgerFile
	}
	if *currency != "" {
		s.Currency = *currency
	}
	s.Currency = strings.ToUpper(s.Currency)
	s.Verbose = s.Verbose || *verbose
	return s, nil
}
