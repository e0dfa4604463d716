package user

import (
	"context"
	"database/sql"

	"ecowear-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, name, email, password string, role Role) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	SetVerified(ctx context.Context, id int) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = "id, name, email, password, role, verified, created_at"

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Verified, &u.CreatedAt)
	return u, err
}

func (r *repository) Create(ctx context.Context, name, email, password string, role Role) (User, error) {
	log := logger.FromCtx(ctx)

	u, err := scanUser(r.db.QueryRowContext(ctx,
		"INSERT INTO users (name, email, password, role) VALUES ($1, $2, $3, $4) RETURNING "+userColumns,
		name, email, password, role,
	))

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1",
		email,
	))
}

func (r *repository) FindByID(ctx context.Context, id int) (User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1",
		id,
	))
}

func (r *repository) ListByRole(ctx context.Context, role Role) ([]User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE role = $1 ORDER BY id",
		role,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Verified, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *repository) SetVerified(ctx context.Context, id int) (User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"UPDATE users SET verified = TRUE WHERE id = $1 RETURNING "+userColumns,
		id,
	))
}
