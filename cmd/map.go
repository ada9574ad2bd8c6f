package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/begraf/trailpost/config"
	"gitlab.com/begraf/trailpost/filesystem"
)

// mapCmd represents the map command
var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Query parcel lockers along the trail and write the map document",
	Run:   runMapCmd,
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringP("output", "o", "", "Output HTML file")
	err := viper.BindPFlag(
		config.KeyOutputFile,
		mapCmd.Flags().Lookup("output"),
	)
	if err != nil {
		panic(err)
	}
}

func runMapCmd(cmd *cobra.Command, args []string) {
	result, err := runPipeline()
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}

	outputFile := filesystem.Abs(config.OutputFile())
	if err := os.WriteFile(outputFile, result.HTML, 0o666); err != nil {
		log.Fatal().Err(err).Msg("could not write map file")
	}

	log.Info().Str("file", outputFile).Msg("map saved")
}
