package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"opencircle/config"
	"opencircle/internal/clock"
	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/domain/lifecycle"
	"opencircle/internal/infra/auth"
	logs "opencircle/internal/infra/log"
	"opencircle/internal/infra/persistence/migration"
	"opencircle/internal/infra/persistence/postgres"
	"opencircle/internal/usecase"
	"opencircle/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - migrate:        apply pending schema migrations and seed roles
// - sweep-sessions: delete expired sessions

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	sweepCmd := flag.NewFlagSet("sweep-sessions", flag.ExitOnError)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "migrate":
		_ = migrateCmd.Parse(os.Args[2:])
		err = runMigrate(ctx)
	case "sweep-sessions":
		_ = sweepCmd.Parse(os.Args[2:])
		err = runSweepSessions(ctx)
	case "-h", "--help", "help":
		printUsage()

		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		info := domainerrors.InfoOf(err)
		fmt.Fprintf(os.Stderr, "Error [%s]: %v\n", info.Code, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: opencircle <command>

Commands:
  migrate          Apply pending schema migrations and seed roles
  sweep-sessions   Delete expired login sessions`)
}

func runMigrate(ctx context.Context) error {
	app := fx.New(
		injectInfra(),
		injectRepo(),
		migration.Module(),
		fx.NopLogger,
	)

	return runOnce(ctx, app, func(context.Context) error { return nil })
}

func runSweepSessions(ctx context.Context) error {
	var (
		sessions usecase.SessionUsecase
		logger   *slog.Logger
	)

	app := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Populate(&sessions, &logger),
		fx.NopLogger,
	)

	return runOnce(ctx, app, func(ctx context.Context) error {
		removed, err := sessions.SweepExpired(ctx)
		if err != nil {
			return err
		}
		logger.Info("Session sweep finished", slog.Int64("removed", removed))

		return nil
	})
}

// runOnce starts the app, runs fn and stops the app again.
func runOnce(ctx context.Context, app *fx.App, fn func(context.Context) error) error {
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx)

	stopCtx, cancelStop := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		clock.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionTokenIssuer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewSessionService,
			impl.NewMembershipService,
			impl.NewEventService,
			impl.NewRSVPService,
			impl.NewPostService,
			impl.NewEngagementService,
			impl.NewNotificationService,
		),
	)
}
