// Package bot implements the core bot functionality: command dispatch,
// scheduled task management, and component lifecycle orchestration.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"

	"github.com/mrsemicolon/semibot/internal/config"
)

// Bot represents the main application and manages its components' lifecycle:
// the gateway session, the scheduler, and the liveness endpoint.
type Bot struct {
	logger    *slog.Logger
	cfg       *config.Config
	session   *discordgo.Session
	scheduler *Scheduler
	health    *HealthServer
}

// NewBot creates a new instance of the bot with all required dependencies.
func NewBot(logger *slog.Logger, cfg *config.Config, session *discordgo.Session, scheduler *Scheduler, health *HealthServer) *Bot {
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		cfg:       cfg,
		session:   session,
		scheduler: scheduler,
		health:    health,
	}
}

// Run starts all components and blocks until the context is cancelled or a
// component fails. A failed gateway login is fatal; everything after that
// only logs and keeps the process alive.
func (b *Bot) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := b.session.Open(); err != nil {
			return fmt.Errorf("open gateway session: %w", err)
		}
		b.logger.Info("Gateway session open")

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, closing gateway session...")
		if err := b.session.Close(); err != nil {
			b.logger.Error("Error closing gateway session", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := b.scheduler.Start(); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}

		<-gCtx.Done()
		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		return b.health.Run(gCtx)
	})

	b.logger.Info("Bot running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	b.logger.Info("Bot stopped gracefully.")
	return nil
}
