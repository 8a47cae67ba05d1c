// Package config loads a mips.GlobalConfig from environment variables and
// an optional YAML file (environment first), over DefaultGlobalConfig,
// following cmd/root.go's viper wiring from the teacher. Command-line
// flags are not bound here.
package config

import (
	"errors"
	"os"

	"github.com/Manu343726/spimgo/pkg/mips"
	"github.com/Manu343726/spimgo/pkg/utils"
	"github.com/spf13/viper"
)

// ErrLoadConfig wraps any failure to resolve or read configuration,
// following the teacher's sentinel-error idiom (pkg/utils/errors.go).
var ErrLoadConfig = errors.New("loading configuration")

// Load builds a viper instance bound to SPIMGO_* environment variables
// and a YAML config file (cfgFile when non-empty, otherwise
// $HOME/.spimgo.yaml if present), then decodes it into a mips.GlobalConfig
// seeded with DefaultGlobalConfig.
func Load(cfgFile string) (mips.GlobalConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("SPIMGO")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return mips.GlobalConfig{}, utils.MakeError(ErrLoadConfig, "resolving home directory: %v", err)
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".spimgo")
	}

	cfg := mips.DefaultGlobalConfig()
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return mips.GlobalConfig{}, utils.MakeError(ErrLoadConfig, "reading config: %v", err)
		}
	}

	return decode(v, cfg)
}

func setDefaults(v *viper.Viper, cfg mips.GlobalConfig) {
	v.SetDefault("add_new_symbols", cfg.AddNewSymbols)
	v.SetDefault("create_data_pads", cfg.CreateDataPads)
	v.SetDefault("create_rodata_pads", cfg.CreateRodataPads)
	v.SetDefault("remove_pointers", cfg.RemovePointers)
	v.SetDefault("write_binary", cfg.WriteBinary)
	v.SetDefault("compiler", cfg.Compiler.String())
	v.SetDefault("line_ends", cfg.LineEnds)
}

func decode(v *viper.Viper, cfg mips.GlobalConfig) (mips.GlobalConfig, error) {
	cfg.AddNewSymbols = v.GetBool("add_new_symbols")
	cfg.CreateDataPads = v.GetBool("create_data_pads")
	cfg.CreateRodataPads = v.GetBool("create_rodata_pads")
	cfg.RemovePointers = v.GetBool("remove_pointers")
	cfg.WriteBinary = v.GetBool("write_binary")
	cfg.LineEnds = v.GetString("line_ends")

	switch v.GetString("compiler") {
	case "gcc":
		cfg.Compiler = mips.CompilerGCC
	case "sn":
		cfg.Compiler = mips.CompilerSN
	default:
		cfg.Compiler = mips.CompilerIDO
	}

	if v.IsSet("gp_value") {
		gp := v.GetInt64("gp_value")
		cfg.GPValue = &gp
	}

	return cfg, nil
}
