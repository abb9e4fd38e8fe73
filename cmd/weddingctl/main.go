package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/auth"
	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/repository/postgres"
	"github.com/Sandy3122/wedding-invitation-backend/internal/config"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
	authservice "github.com/Sandy3122/wedding-invitation-backend/internal/core/service/auth"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/section"

	"github.com/spf13/cobra"
)

// CLI flags
var (
	usernameFlag string
	passwordFlag string
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:          "weddingctl",
	Short:        "Administration tasks for the wedding backend",
	SilenceUsage: true,
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Store the admin username and password",
	Long: `Stores the admin credentials. The password is digested with SHA-256 the way
the admin panel does before login, then hashed with bcrypt.

Example:
  weddingctl seed-admin --username admin --password 'correct horse'`,
	RunE: withAuthService(func(ctx context.Context, service port.AuthService) error {
		if err := service.SetCredentials(ctx, usernameFlag, auth.DigestPassword(passwordFlag)); err != nil {
			return err
		}
		logger.Info("admin credentials stored", "username", usernameFlag)
		return nil
	}),
}

var verifyAdminCmd = &cobra.Command{
	Use:   "verify-admin",
	Short: "Check a username and password against the stored admin credentials",
	RunE: withAuthService(func(ctx context.Context, service port.AuthService) error {
		if err := service.CheckCredentials(ctx, usernameFlag, auth.DigestPassword(passwordFlag)); err != nil {
			return err
		}
		fmt.Println("credentials are valid")
		return nil
	}),
}

var resetSectionsCmd = &cobra.Command{
	Use:   "reset-sections",
	Short: "Replace every site section with the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
			sections, err := section.NewSectionService(postgres.NewUnitOfWork(db)).ResetSections(ctx)
			if err != nil {
				return err
			}
			logger.Info("sections reset", "count", len(sections))
			return nil
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{seedAdminCmd, verifyAdminCmd} {
		cmd.Flags().StringVarP(&usernameFlag, "username", "u", "", "Admin username")
		cmd.Flags().StringVarP(&passwordFlag, "password", "p", "", "Admin password in clear text")
		_ = cmd.MarkFlagRequired("username")
		_ = cmd.MarkFlagRequired("password")
	}
	rootCmd.AddCommand(seedAdminCmd, verifyAdminCmd, resetSectionsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// withAuthService runs fn with an auth service backed by the configured database.
// No token issuer is needed since the CLI never signs tokens.
func withAuthService(fn func(ctx context.Context, service port.AuthService) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
			service := authservice.NewAuthService(postgres.NewSqlAdminRepository(db), nil, auth.NewBcryptHasher(0), config.AuthConfig{})
			return fn(ctx, service)
		})
	}
}

func withDB(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return fn(ctx, db)
}
