package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/internal/config"
	zlog "github.com/bigredeye/gradebook/pkg/log"
)

var (
	log        *zap.Logger
	book       *gradebook
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "gradebook",
	Short:         "Student records, grades and result reports",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.ParseConfig(configPath)
		if err != nil {
			return err
		}
		initLogging(conf)
		book = newGradebook(conf, log)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		zlog.Sync()
	},
}

func initLogging(conf *config.Config) {
	switch {
	case conf.Log.File != "":
		log = zlog.InitFile(conf.Log.File, conf.Log.Production)
	case conf.Log.Production:
		log = zlog.InitProd()
	default:
		log = zlog.InitCLI()
	}
}

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config")

	rootCmd.AddCommand(makeStudentsCommand())
	rootCmd.AddCommand(makeCoursesCommand())
	rootCmd.AddCommand(makeGradesCommand())
	rootCmd.AddCommand(makeReportCommand())
	rootCmd.AddCommand(makeChartsCommand())
	rootCmd.AddCommand(makeExportCommand())
	rootCmd.AddCommand(makeImportCommand())
	rootCmd.AddCommand(makeArchiveCommand())
	rootCmd.AddCommand(makeServeCommand())
	rootCmd.AddCommand(makeRemoteCommand())
	rootCmd.AddCommand(makeMenuCommand())
}

func init() {
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s\n", err.Error())
		os.Exit(1)
	}
}
