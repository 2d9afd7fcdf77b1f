// Package server wires the account services to their storage, cache, mail
// and transport collaborators and runs them until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server/auth"
	"github.com/dmitrijs2005/accountkeeper/internal/server/config"
	"github.com/dmitrijs2005/accountkeeper/internal/server/mailer"
	"github.com/dmitrijs2005/accountkeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/accountkeeper/internal/server/services"
	"github.com/dmitrijs2005/accountkeeper/internal/server/tokencache"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	gs "github.com/dmitrijs2005/accountkeeper/internal/server/grpc"
)

const startupTimeout = 30 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	rdb      *redis.Client
	sessions *services.SessionService
	accounts *services.AccountService
	wallets  *services.WalletService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})
	// the cache is optional for reads and fail-closed for the login gate,
	// so an unreachable redis at boot is only reported
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn(ctx, "redis unreachable at startup", "addr", c.RedisAddr, "error", err)
	}

	clock := timex.SystemClock{}
	runner := dbx.NewSQLRunner(db, nil)
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	limiter := ratelimit.New(rdb)

	var sender mailer.Sender
	if c.ResendAPIKey == "" {
		logger.Warn(ctx, "RESEND_API_KEY not set, mails are only logged")
		sender = mailer.NewNopMailer(logger)
	} else {
		sender = mailer.NewResendMailer(c.ResendAPIKey, c.MailFrom, c.MailRatePerSecond, logger)
	}

	sessions := services.NewSessionService(
		runner, repos,
		auth.NewTokenCodec([]byte(c.SecretKey), clock),
		hasher, limiter,
		tokencache.New(rdb, clock),
		clock, logger,
		services.SessionConfig{
			AccessTokenTTL:   c.AccessTokenValidityDuration,
			RefreshTokenTTL:  c.RefreshTokenValidityDuration,
			MaxLoginAttempts: c.MaxLoginAttempts,
			LoginAttemptsTTL: c.LoginAttemptsTTL,
		},
	)
	wallets := services.NewWalletService(runner, repos, logger, c.MaxWalletsPerType)
	accounts := services.NewAccountService(
		runner, repos, hasher, wallets, sessions, limiter, sender, clock, logger,
		services.AccountConfig{
			ConfirmCodeLength:     c.ConfirmCodeLength,
			ConfirmCodeTTL:        c.ConfirmCodeTTL,
			RestoreCodeLength:     c.RestoreCodeLength,
			RestoreInitiateTTL:    c.RestoreInitiateTTL,
			RestoreCompleteTTL:    c.RestoreCompleteTTL,
			MaxRestoreAttempts:    c.MaxRestoreAttempts,
			RestoreAttemptsWindow: c.RestoreAttemptsWindow,
		},
	)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		rdb:      rdb,
		sessions: sessions,
		accounts: accounts,
		wallets:  wallets,
	}, nil
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessions, app.accounts, app.wallets)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

type expiredPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// runPurger removes expired tokens and codes every interval until ctx ends.
// A failed sweep is logged and retried on the next tick.
func runPurger(ctx context.Context, interval time.Duration, p expiredPurger, log logging.Logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.PurgeExpired(ctx)
			if err != nil {
				log.Warn(ctx, "purge failed", "error", err)
				continue
			}
			if n > 0 {
				log.Debug(ctx, "purged expired records", "count", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		runPurger(ctx, app.config.PurgeInterval, app.sessions, app.logger.With("module", "purger"))
	}()

	wg.Wait()

	if err := app.rdb.Close(); err != nil {
		app.logger.Warn(context.Background(), "redis close", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(context.Background(), "db close", "error", err)
	}
	app.logger.Info(context.Background(), "Stopped")
}
