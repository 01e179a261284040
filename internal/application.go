package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/transport/console"
	"github.com/rocketscienceinc/tictactoe-board/transport/rest"
)

const cleanupTimeout = 5 * time.Second

// RunApp - runs the application until stdin is exhausted or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return Run(ctx, logger, conf, os.Stdin)
}

// Run - plays one session fed by the events read from input.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, input io.Reader) error {
	log := logger.With("component", "app")

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app, err := newApp(logger, conf, pkg.GenerateSessionID())
	if err != nil {
		return err
	}

	if redisAddr := conf.Redis.GetRedisAddr(); redisAddr != "" {
		redisStorage, err := storage.New(ctx, redisAddr)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		app.scores = repository.NewScoreRepository(redisStorage, conf.SessionTTL)
		app.mirrorScore(ctx, true)
		defer app.dropScore()
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	if conf.HTTPPort != "" {
		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewHandlers(logger, app.snapshots)); httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
				httpErrCh <- httpErr
			}
		}()
	}

	ticker := time.NewTicker(conf.FrameInterval)
	defer ticker.Stop()

	events := console.NewParser(conf.Marks()).Read(ctx, input)

	log.Info("Session started", "session_id", app.session.ID())

	for {
		select {
		case <-ctx.Done():
			log.Info("Application context canceled, shutting down")
			return nil

		case err = <-httpErrCh:
			return fmt.Errorf("HTTP server error: %w", err)

		case result, ok := <-events:
			if !ok {
				log.Info("Input closed, shutting down", "score", app.session.Score())
				return nil
			}

			if result.Err != nil {
				log.Warn("skipping event", "line", result.Line, "error", result.Err)
				continue
			}

			app.handle(ctx, result.Event)

		case now := <-ticker.C:
			app.frame(now)
		}
	}
}

// snapshots holds the last published session snapshot for concurrent readers.
type snapshots struct {
	current atomic.Pointer[usecase.Snapshot]
}

func (that *snapshots) Publish(snapshot usecase.Snapshot) {
	that.current.Store(&snapshot)
}

func (that *snapshots) Current() *usecase.Snapshot {
	return that.current.Load()
}

type app struct {
	logger    *slog.Logger
	session   *usecase.Session
	snapshots *snapshots
	scores    repository.ScoreRepository
	mirrored  entity.ScoreTally
	animating bool
}

func newApp(logger *slog.Logger, conf *config.Config, sessionID string) (*app, error) {
	session, err := usecase.NewSession(logger, usecase.Options{
		SessionID: sessionID,
		Rules:     conf.Rules(),
		Layout:    conf.Layout(),
		Marks:     conf.Marks(),
		Width:     conf.Window.Width,
		Height:    conf.Window.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start session: %w", err)
	}

	that := &app{
		logger:    logger.With("component", "app", "session_id", sessionID),
		session:   session,
		snapshots: &snapshots{},
	}
	that.snapshots.Publish(session.Snapshot())

	return that, nil
}

// handle - delivers one event to the session and publishes the result.
func (that *app) handle(ctx context.Context, event console.Event) {
	switch event.Kind {
	case console.KindResize:
		that.session.Resize(event.X, event.Y)
	case console.KindClick:
		if !that.session.CellActivated(event.Row, event.Col) {
			that.logger.Debug("click ignored", "row", event.Row, "col", event.Col)
		}
	case console.KindDrag:
		that.session.DragMove(event.Player, event.X, event.Y)
	case console.KindDrop:
		if !that.session.BankDropped(event.Player, event.X, event.Y) {
			that.logger.Debug("drop ignored", "player", event.Player, "x", event.X, "y", event.Y)
		}
	case console.KindRestart:
		that.session.Restart()
	}

	that.snapshots.Publish(that.session.Snapshot())
	that.mirrorScore(ctx, false)
}

// frame - advances the winning-cell effect; idle frames publish nothing.
func (that *app) frame(now time.Time) {
	animating := that.session.Frame(now)
	if animating || that.animating {
		that.snapshots.Publish(that.session.Snapshot())
	}
	that.animating = animating
}

func (that *app) mirrorScore(ctx context.Context, force bool) {
	if that.scores == nil {
		return
	}

	tally := that.session.Score()
	if !force && tally == that.mirrored {
		return
	}

	if err := that.scores.Save(ctx, that.session.ID(), tally); err != nil {
		that.logger.Error("could not mirror score", "error", err)
		return
	}
	that.mirrored = tally
}

func (that *app) dropScore() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	err := that.scores.DeleteByID(ctx, that.session.ID())
	if err != nil && !errors.Is(err, apperror.ErrScoreNotFound) {
		that.logger.Error("could not delete score", "error", err)
	}
}
