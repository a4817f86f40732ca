// Package cli implements the matchctl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/app"
	"github.com/noah-isme/scholarship-match-api/internal/dto"
	"github.com/noah-isme/scholarship-match-api/pkg/config"
	"github.com/noah-isme/scholarship-match-api/pkg/logger"
)

const appName = "matchctl"

// Actual version can be specified in build command.
var version = "unknown"

// Backend is what the commands need from the wired application.
type Backend interface {
	Matches(ctx context.Context, studentID string, explain bool) (*dto.StudentMatchesResponse, error)
	Scholarships(ctx context.Context) (*dto.ScholarshipListResponse, error)
	PurgeExplanations(ctx context.Context, studentID string) error
	Close() error
}

// BackendFactory builds a Backend on demand so commands like version never touch the database.
type BackendFactory func(ctx context.Context) (Backend, error)

// NewRootCommand assembles the command tree.
func NewRootCommand(factory BackendFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         appName + " inspects scholarship matches from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", false, "print JSON instead of a table")

	root.AddCommand(
		newMatchesCommand(factory),
		newScholarshipsCommand(factory),
		newExplanationsCommand(factory),
		newVersionCommand(),
	)
	return root
}

// Execute runs matchctl against the configured database.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand(defaultBackend).ExecuteContext(ctx)
}

func defaultBackend(ctx context.Context) (Backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	container, err := app.New(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &containerBackend{container: container, logger: log}, nil
}

type containerBackend struct {
	container *app.Container
	logger    *zap.Logger
}

func (b *containerBackend) Matches(ctx context.Context, studentID string, explain bool) (*dto.StudentMatchesResponse, error) {
	if explain {
		return b.container.Matches.Matches(ctx, studentID)
	}
	return b.container.Matches.MatchesWithoutExplanations(ctx, studentID)
}

func (b *containerBackend) Scholarships(ctx context.Context) (*dto.ScholarshipListResponse, error) {
	return b.container.Scholarships.List(ctx)
}

func (b *containerBackend) PurgeExplanations(ctx context.Context, studentID string) error {
	if b.container.Redis == nil {
		return fmt.Errorf("explanation cache is disabled (set REDIS_ENABLED=true)")
	}
	return b.container.Explanations.Purge(ctx, studentID)
}

func (b *containerBackend) Close() error {
	_ = b.logger.Sync()
	return b.container.Close()
}

func withBackend(cmd *cobra.Command, factory BackendFactory, fn func(Backend) error) error {
	backend, err := factory(cmd.Context())
	if err != nil {
		return err
	}
	defer backend.Close() //nolint:errcheck
	return fn(backend)
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", appName, version)
		},
	}
}

func writeLine(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}
