package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kipkoech854/Real-estate-management/internal/adapter/cli"
	"github.com/Kipkoech854/Real-estate-management/internal/adapter/repository"
	"github.com/Kipkoech854/Real-estate-management/internal/infrastructure/auth"
	"github.com/Kipkoech854/Real-estate-management/internal/infrastructure/database"
	"github.com/Kipkoech854/Real-estate-management/internal/infrastructure/ratelimit"
	"github.com/Kipkoech854/Real-estate-management/internal/usecase"
	"github.com/Kipkoech854/Real-estate-management/pkg/config"
	"github.com/Kipkoech854/Real-estate-management/pkg/logger"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

type rootFlags struct {
	configPath string
	envFiles   []string
}

func main() {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "realestate",
		Short:         "Interactive real estate listings, reviews and chat",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Optional YAML config file")
	root.PersistentFlags().StringArrayVar(&flags.envFiles, "env-file", nil, "Dotenv file to load (may be repeated, default .env)")

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), flags)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration, sends logs to the configured file and opens
// the connection pool.
func setup(ctx context.Context, flags rootFlags) (*config.Config, *pgxpool.Pool, func(), error) {
	cfg, err := config.Load(flags.configPath, flags.envFiles...)
	if err != nil {
		return nil, nil, nil, codeError(1, "load config: %v", err)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, nil, codeError(1, "open log file %s: %v", cfg.LogFile, err)
	}
	logger.SetOutput(logFile)

	pool, err := database.Connect(ctx, cfg.DatabaseURL,
		database.WithMaxConns(cfg.DBMaxConns),
		database.WithConnectTimeout(cfg.DBConnectTimeout),
	)
	if err != nil {
		logger.Error("Failed to connect to database: %v", err)
		logFile.Close()
		return nil, nil, nil, codeError(1, "could not connect to the database: %v", err)
	}

	cleanup := func() {
		pool.Close()
		logFile.Close()
	}
	return cfg, pool, cleanup, nil
}

// runMigrate stops on SIGINT or SIGTERM. The interactive shell keeps the
// default signal handling so Ctrl-C ends the process mid-prompt.
func runMigrate(ctx context.Context, flags rootFlags) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, pool, cleanup, err := setup(ctx, flags)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Error("Migration failed: %v", err)
		return codeError(1, "migrate: %v", err)
	}
	fmt.Println("Schema is up to date.")
	return nil
}

func runShell(ctx context.Context, flags rootFlags) error {
	cfg, pool, cleanup, err := setup(ctx, flags)
	if err != nil {
		return err
	}
	defer cleanup()

	db := database.NewSQLX(pool)
	defer db.Close()

	userRepo := repository.NewPgUserRepository(db)
	agencyRepo := repository.NewPgAgencyRepository(db)
	listingRepo := repository.NewPgListingRepository(db)
	mediaRepo := repository.NewPgMediaRepository(db)
	savedRepo := repository.NewPgSavedListingRepository(db)
	reviewRepo := repository.NewPgReviewRepository(db)
	chatRepo := repository.NewPgChatRepository(pool)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	authUseCase := usecase.NewAuthUseCase(userRepo, hasher)
	authUseCase.SetLoginLimiter(ratelimit.NewRateLimiter(map[string]ratelimit.Policy{
		"login": ratelimit.LoginPolicy,
	}))

	services := cli.Services{
		Auth:     authUseCase,
		Users:    usecase.NewUserUseCase(userRepo),
		Agencies: usecase.NewAgencyUseCase(agencyRepo, cfg.LicenseStateCode),
		Listings: usecase.NewListingUseCase(listingRepo, mediaRepo, agencyRepo, int(cfg.BrowsePageSize)),
		Saved:    usecase.NewSavedListingUseCase(savedRepo, listingRepo),
		Reviews:  usecase.NewReviewUseCase(reviewRepo, listingRepo, savedRepo),
		Chat:     usecase.NewConversationUseCase(chatRepo, userRepo),
	}

	logger.Info("Starting realestate %s (%s)", version, cfg.Environment)
	shell := cli.NewShell(cli.NewPrompter(os.Stdin, os.Stdout), services)
	return shell.Run(ctx)
}
