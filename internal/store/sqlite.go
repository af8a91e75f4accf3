package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/akramarev/userreg/internal/models"
)

// Store handles user persistence against an embedded SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the database file at path, creating it if absent. The busy
// timeout makes concurrent writers queue on the file lock instead of
// failing immediately.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Migrate creates the users table if it doesn't exist. Safe to run on
// every startup.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT UNIQUE NOT NULL,
			email         TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// CreateUser inserts a new user and returns the store-assigned id.
// Returns ErrDuplicate when the username or email is already taken.
func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
		username, email, passwordHash,
	)
	if err != nil {
		return 0, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// FindByIdentity returns the user whose username or email matches.
// Returns ErrNotFound when neither is taken.
func (s *Store) FindByIdentity(ctx context.Context, username, email string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users
		 WHERE username = ? OR email = ?`,
		username, email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// ListUsers returns the public projection of every user. The result is
// never nil so an empty table serializes as an empty JSON array.
func (s *Store) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, email, created_at FROM users`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.PublicUser{}
	for rows.Next() {
		var u models.PublicUser
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
