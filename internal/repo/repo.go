package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

var ErrUserNotFound = errors.New("user not found")

// Repository stores calculator accounts. Calculations themselves are never persisted.
type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
}

const schema = `CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	login TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL,
	password TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Open connects to Postgres and makes sure the users table exists. sslmode
// defaults to require when the DSN does not name one.
func Open(ctx context.Context, connStr string) (*sql.DB, error) {
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			sep := "?"
			if strings.Contains(connStr, "?") {
				sep = "&"
			}
			connStr += sep + "sslmode=require"
		} else {
			connStr += " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate users: %w", err)
	}
	return db, nil
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

// GetByLogin returns the user's id and password hash, or ErrUserNotFound.
func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", ErrUserNotFound
		}
		return 0, "", err
	}
	return id, hash, nil
}
