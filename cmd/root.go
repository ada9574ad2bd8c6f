package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/begraf/trailpost/config"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trailpost",
	Short: "Find parcel lockers along a recorded trail and put them on a map",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	var err error

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.trailpost.yaml)")

	rootCmd.PersistentFlags().StringP("track", "t", "", "Track recording file (GPX or NMEA)")
	err = viper.BindPFlag(
		config.KeyTrackFile,
		rootCmd.PersistentFlags().Lookup("track"),
	)
	if err != nil {
		panic(err)
	}

	rootCmd.PersistentFlags().String("token-file", "", "File containing the locator API token")
	err = viper.BindPFlag(
		config.KeyTokenFile,
		rootCmd.PersistentFlags().Lookup("token-file"),
	)
	if err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in working directory and home with name ".trailpost" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".trailpost")
	}

	viper.SetEnvPrefix("trailpost")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}
