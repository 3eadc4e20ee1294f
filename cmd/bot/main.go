package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/croveer/minesweeper-gen/internal/config"
)

var log = logrus.New()

func setupLogging(cfg *config.Bot) error {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if cfg.LogFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}

func main() {
	cfg, err := config.NewBot()
	if err != nil {
		log.Fatal("unable to read bot config: ", err)
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("unable to create discord session: ", err)
	}

	b := &bot{log: log, prefix: cfg.Prefix}
	dg.AddHandler(b.onMessage)
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	if err := dg.Open(); err != nil {
		log.Fatal("unable to connect to discord: ", err)
	}
	defer dg.Close()

	log.Infof("bot online, command prefix %q", cfg.Prefix)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	<-ctx.Done()
	log.Info("shutting down")
}
