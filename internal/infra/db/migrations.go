package db

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"

	"storefront/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.up.sql
var migrationFS embed.FS

// RunMigrations applies every embedded *.up.sql file in name order. The
// scripts are idempotent so they run on every start.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	files, err := fs.Glob(migrationFS, "migrations/*.up.sql")
	if err != nil {
		return errs.Wrap(err, "failed to glob migration files")
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := migrationFS.ReadFile(file)
		if err != nil {
			return errs.Wrapf(err, "failed to read migration file %s", file)
		}

		logger.Info("running migration", "file", file)
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return errs.Wrapf(err, "failed to execute migration %s", file)
		}
	}
	return nil
}
