// Package config registers every setting, binds it to the environment and reads the optional TOML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mediabar/mediabar/constant"
	"github.com/mediabar/mediabar/filesystem"
	"github.com/mediabar/mediabar/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns "waveform.tick_ms" into "WAVEFORM_TICK_MS".
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup must run before anything reads viper. A missing config file is not an error.
func Setup() error {
	viper.SetFs(filesystem.API())

	bindEnv()
	registerDefaults()

	return readFile(where.Config())
}

func bindEnv() {
	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)

	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}
}

func registerDefaults() {
	viper.SetTypeByDefaultValue(true)

	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}
}

func readFile(dir string) error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.AddConfigPath(dir)

	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil, errors.As(err, &notFound):
		return nil
	default:
		return fmt.Errorf("read config in %s: %w", dir, err)
	}
}
