// Package storage opens the durable medium behind the note store and applies
// its schema.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/client/migrations"
	"github.com/dmitrijs2005/notekeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Dialect names the backing database.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DB bundles the open connection with the key/value repository bound to it.
type DB struct {
	Conn    *sql.DB
	KV      kv.Repository
	Dialect Dialect
}

// DialectFor picks the backend from the DSN. PostgreSQL URLs go to pgx,
// everything else is treated as a SQLite path.
func DialectFor(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// Open connects to dsn, runs pending migrations and returns the bound repository.
func Open(ctx context.Context, dsn string) (*DB, error) {
	dialect := DialectFor(dsn)

	var (
		driver string
		fsys   fs.FS
	)
	switch dialect {
	case DialectPostgres:
		driver, fsys = "pgx", migrations.Postgres
	default:
		driver, fsys = "sqlite", migrations.SQLite
	}

	if dialect == DialectSQLite {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("db dir: %w", err)
		}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if dialect == DialectSQLite {
		// one writer; also keeps ":memory:" on a single database
		conn.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, conn, dialect, fsys); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{Conn: conn, Dialect: dialect}
	if dialect == DialectPostgres {
		db.KV = kv.NewPostgresRepository(conn)
	} else {
		db.KV = kv.NewSQLiteRepository(conn)
	}
	return db, nil
}

// RunMigrations applies the embedded migrations found under the dialect's
// directory in fsys. Each call uses its own goose provider, so concurrent
// opens do not share migration state.
func RunMigrations(ctx context.Context, conn *sql.DB, dialect Dialect, fsys fs.FS) error {
	sub, err := fs.Sub(fsys, migrationDir(dialect))
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.Dialect(dialect), conn, sub)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func migrationDir(d Dialect) string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// InTx runs fn against a repository bound to a fresh transaction.
func (db *DB) InTx(ctx context.Context, fn func(ctx context.Context, repo kv.Repository) error) error {
	return dbx.WithTx(ctx, db.Conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if db.Dialect == DialectPostgres {
			return fn(ctx, kv.NewPostgresRepository(tx))
		}
		return fn(ctx, kv.NewSQLiteRepository(tx))
	})
}

func (db *DB) Close() error {
	return db.Conn.Close()
}
