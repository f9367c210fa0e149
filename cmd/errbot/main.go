package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"scerr/internal/adapters/discord"
	"scerr/internal/bootstrap"
	"scerr/internal/config"
)

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	rt, err := bootstrap.Open(context.Background(), cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load message tables")
	}
	defer rt.Close()

	bot, err := discord.NewBot(cfg, rt.Describe())
	if err != nil {
		logrus.WithError(err).Fatal("failed to create bot")
	}
	if err := bot.Start(); err != nil {
		logrus.WithError(err).Error("bot stopped")
		rt.Close()
		os.Exit(1)
	}
}
