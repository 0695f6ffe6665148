// Package main contains the entrypoint for the bot.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/bot"
	"github.com/mrsemicolon/semibot/internal/bot/handlers"
	"github.com/mrsemicolon/semibot/internal/bot/tasks"
	"github.com/mrsemicolon/semibot/internal/config"
	"github.com/mrsemicolon/semibot/internal/discord"
	"github.com/mrsemicolon/semibot/internal/github"
	"github.com/mrsemicolon/semibot/internal/leetcode"
	"github.com/mrsemicolon/semibot/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all components (config, logger, gateway session, API
// clients, dispatcher, scheduler), starts the bot, and returns an exit code.
func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	session, err := discord.New(cfg.Discord.Token, log)
	if err != nil {
		log.Error("Failed to create gateway session", "error", err)
		return 1
	}

	githubClient := github.NewClient(cfg.GitHub, log)
	leetcodeClient := leetcode.NewClient(cfg.LeetCode, log)

	tDeps := tasks.TaskDeps{
		Logger:   log,
		Config:   cfg,
		Session:  session,
		LeetCode: leetcodeClient,
	}
	hDeps := handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Session:  session,
		GitHub:   githubClient,
		LeetCode: leetcodeClient,
		PostDaily: func(ctx context.Context) error {
			return tasks.PostDailyChallenge(ctx, tDeps)
		},
	}

	dispatcher := bot.NewDispatcher(cfg.Discord.Prefix, handlers.RegisterAllCommands(hDeps), log)
	session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		dispatcher.HandleMessage(ctx, m)
	})

	scheduler, err := bot.NewScheduler(log, &cfg.Daily, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, cfg, session, scheduler, bot.NewHealthServer(log, cfg.Server.ListenAddr))

	log.Info("Starting bot...")
	if runErr := app.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	return 0
}
