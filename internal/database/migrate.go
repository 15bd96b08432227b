package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"med-estudia/internal/logger"

	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

// Execer is the subset of *sql.DB and *sqlx.DB migrations need.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Migrations returns the embedded up-migrations in file name order.
func Migrations() ([]string, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// RunMigrations executes every statement of every embedded up-migration.
// go-ora runs one statement per call, so files are split on ";" lines.
// Objects that already exist (ORA-00955) are skipped.
func RunMigrations(ctx context.Context, db Execer) error {
	l := logger.Get()

	names, err := Migrations()
	if err != nil {
		return fmt.Errorf("could not list migrations: %w", err)
	}

	for _, name := range names {
		content, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				if strings.Contains(err.Error(), "ORA-00955") {
					l.Info("Skipping existing object", zap.String("migration", name))
					continue
				}
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}

		l.Info("Executed migration", zap.String("migration", name))
	}

	l.Info("Migrations completed successfully")
	return nil
}

// SplitStatements splits a SQL script on ";" at line ends and drops blank
// statements and "--" comment lines.
func SplitStatements(script string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(trimmed, ";"))
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				stmts = append(stmts, stmt)
			}
			current.Reset()
			continue
		}
		current.WriteString(trimmed)
		current.WriteString("\n")
	}
	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		stmts = append(stmts, stmt)
	}
	return stmts
}
