package cmd

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/begraf/trailpost/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pipeline once and serve the resulting map over HTTP",
	RunE:  runServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address")
	err := viper.BindPFlag(
		config.KeyServeAddr,
		serveCmd.Flags().Lookup("addr"),
	)
	if err != nil {
		panic(err)
	}
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	result, err := runPipeline()
	if err != nil {
		return err
	}

	r := gin.New()

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", result.HTML)
	})

	r.GET("/lockers.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": result.Lockers})
	})

	r.GET("/route.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"route":   result.Route,
			"markers": result.Markers,
		})
	})

	log.Info().Str("addr", config.ServeAddr()).Msg("serving map")

	return r.Run(config.ServeAddr())
}
