package cmd

import (
	"fmt"
	"os"

	"github.com/Manu343726/spimgo/cmd/contextcmd"
	"github.com/Manu343726/spimgo/cmd/diffcmd"
	"github.com/Manu343726/spimgo/cmd/disasmcmd"
	"github.com/Manu343726/spimgo/cmd/symboladdrscmd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "spimgo",
	Short: "A symbol-recovery disassembler core for MIPS N64 (R4300) binaries",
	Long: `spimgo partitions .data and .rodata sections of a MIPS N64 binary image
into named, typed spans, recovering compiler-generated symbols (strings, jump
tables, padding) without decoding any instructions itself.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.spimgo.yaml)")
	RootCmd.AddCommand(disasmcmd.Cmd, diffcmd.Cmd, contextcmd.Cmd, symboladdrscmd.Cmd)
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spimgo")
	}

	viper.SetEnvPrefix("SPIMGO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
