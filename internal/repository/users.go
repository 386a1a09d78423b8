package repository

import (
	"github.com/crabbyteti/tambak-monitor/internal/domain"
)

// InsertUser adds a new user and returns the stored row. The unique index on
// email is the backstop against races past the caller's pre-check.
func (r *Repos) InsertUser(name, email, passwordHash string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password, created_at, last_login, is_active`,
		name, email, passwordHash)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindActiveUserByEmail returns sql.ErrNoRows when no active user matches.
func (r *Repos) FindActiveUserByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `
		SELECT id, name, email, password, created_at, last_login, is_active
		FROM users WHERE email = $1 AND is_active = true`,
		email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repos) CountUsersByEmail(email string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM users WHERE email = $1`, email)
	return n, err
}

func (r *Repos) TouchLastLogin(userID int) error {
	_, err := r.db.Exec(`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = $1`, userID)
	return err
}
