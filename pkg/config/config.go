package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	KeyAPIToken      = "ynab_api_token"
	KeyBudgetID      = "ynab_budget_id"
	KeyCategoryKey   = "category_key"
	KeyOutput        = "output"
	KeyCSVDateFormat = "csv_date_format"

	CategoryKeyName = "name"
	CategoryKeyID   = "id"

	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	ErrMissingToken    = errors.New("ynab_api_token is not set")
	ErrMissingBudgetID = errors.New("ynab_budget_id is not set")
)

// Config is read once at startup and passed explicitly from there on.
type Config struct {
	APIToken      string `mapstructure:"ynab_api_token"`
	BudgetID      string `mapstructure:"ynab_budget_id"`
	CategoryKey   string `mapstructure:"category_key"`
	Output        string `mapstructure:"output"`
	CSVDateFormat string `mapstructure:"csv_date_format"`
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"by":     KeyCategoryKey,
	"output": KeyOutput,
}

// Build loads the configuration from path (config.yaml in the working
// directory when empty), a .env file and the environment. Flags present in
// flags take precedence over both.
//
// An explicitly given file must exist. The default file is optional so that
// credentials can come from the environment alone; Validate reports what is
// still missing.
func Build(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyCategoryKey, CategoryKeyName)
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyCSVDateFormat, "2006-01-02")

	v.SetEnvPrefix("ynabavg")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyAPIToken, "YNAB_API_TOKEN", "YNABAVG_YNAB_API_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind env %s: %w", KeyAPIToken, err)
	}
	if err := v.BindEnv(KeyBudgetID, "YNAB_BUDGET_ID", "YNABAVG_YNAB_BUDGET_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind env %s: %w", KeyBudgetID, err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for flag, key := range flagKeys {
			f := flags.Lookup(flag)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration. Credentials are only required when the
// report is read from the YNAB API.
func (c *Config) Validate(requireAPI bool) error {
	var errs []error

	if requireAPI {
		if c.APIToken == "" {
			errs = append(errs, ErrMissingToken)
		}
		if c.BudgetID == "" {
			errs = append(errs, ErrMissingBudgetID)
		}
	}

	switch c.CategoryKey {
	case CategoryKeyName, CategoryKeyID:
	default:
		errs = append(errs, fmt.Errorf("invalid category_key %q: must be %q or %q", c.CategoryKey, CategoryKeyName, CategoryKeyID))
	}

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("invalid output %q: must be one of %s, %s, %s", c.Output, OutputText, OutputJSON, OutputYAML))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// ResolveNames reports whether category ids should be replaced by names.
func (c *Config) ResolveNames() bool {
	return c.CategoryKey == CategoryKeyName
}
