package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	pkg "github.com/limelight-agency/limelight/pkg/internal"
	"github.com/limelight-agency/limelight/pkg/internal/cache"
	"github.com/limelight-agency/limelight/pkg/internal/database"
	"github.com/limelight-agency/limelight/pkg/internal/http"
	"github.com/limelight-agency/limelight/pkg/internal/mailer"
	"github.com/limelight-agency/limelight/pkg/internal/mediastore"
	"github.com/limelight-agency/limelight/pkg/internal/services"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" _     _                _ _       _     _\n| |   (_)_ __ ___   ___| (_) __ _| |__ | |_\n| |   | | '_ ` _ \\ / _ \\ | |/ _` | '_ \\| __|\n| |___| | | | | | |  __/ | | (_| | | | | |_\n|_____|_|_| |_| |_|\\___|_|_|\\__, |_| |_|\\__|\n                            |___/"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Limelight"), pkg.AppVersion)
	fmt.Printf("The content engine behind the agency\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Set up route cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up cache.")
	}

	// Connect to media store
	if store, err := mediastore.NewMinio(); err != nil {
		log.Error().Err(err).Msg("An error occurred when connecting to media store. Media uploads will be disabled.")
	} else {
		mediastore.S = store
	}

	// Set up mailer
	mailer.S = mailer.NewSmtp()

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
