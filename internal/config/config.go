// Package config loads the runtime settings of the nn2opt command.
//
// Sources, highest priority first: command-line flags bound with BindFlags,
// NN2OPT_* environment variables, an optional config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/nn2opt/tourio"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "NN2OPT"

// Keys shared by flags, environment and config files.
const (
	KeySuffix    = "suffix"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyNoOpt     = "no_opt"
)

// ErrInvalidConfig is returned when the merged settings fail validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the merged settings.
type Config struct {
	Suffix    string `mapstructure:"suffix" validate:"required"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`
	NoOpt     bool   `mapstructure:"no_opt"`
}

// New returns a viper instance with defaults and environment lookup installed.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySuffix, tourio.DefaultSuffix)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyNoOpt, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds flags to their config keys. Flag names use dashes
// ("log-level"), keys use underscores.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeySuffix, KeyLogLevel, KeyLogFormat, KeyNoOpt} {
		f := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	}

	return nil
}

// Load reads the optional config file, merges every source and validates
// the result.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks cfg against its struct tags and reports every violation
// in plain English.
func Validate(cfg Config) error {
	validate := validator.New()
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
