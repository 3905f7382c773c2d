package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// UserRepository persists the polymorphic user record: one root row in
// users plus a role row in clients or assistants linked by user_id. The
// unique constraint on users.email is the authoritative uniqueness guard;
// no check-then-insert happens at this layer.
type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userSelect = `
SELECT u.id, u.email, u.password_hash, u.role, u.first_name, u.last_name,
       u.date_of_birth, u.created_at, c.handicap_type, a.available
FROM users u
LEFT JOIN clients c ON c.user_id = u.id
LEFT JOIN assistants a ON a.user_id = u.id`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.scanUser(r.db.QueryRow(ctx, userSelect+" WHERE u.email = $1", email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.scanUser(r.db.QueryRow(ctx, userSelect+" WHERE u.id = $1", id))
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, userSelect+" ORDER BY u.id")
	if err != nil {
		return nil, mapError("list users", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list users", err)
	}
	return users, nil
}

// Create inserts the root row and the role row in one transaction. The
// identifier and creation timestamp are assigned by the store.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, mapError("create user", err)
	}
	defer tx.Rollback(ctx)

	created := *user
	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role, first_name, last_name, date_of_birth)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		user.Email, user.PasswordHash, user.Role, user.FirstName, user.LastName, user.DateOfBirth,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, mapError("create user", err)
	}

	switch {
	case created.Profile.Client != nil:
		_, err = tx.Exec(ctx,
			`INSERT INTO clients (user_id, handicap_type) VALUES ($1, $2)`,
			created.ID, created.Profile.Client.HandicapType)
	case created.Profile.Assistant != nil:
		_, err = tx.Exec(ctx,
			`INSERT INTO assistants (user_id, available) VALUES ($1, $2)`,
			created.ID, created.Profile.Assistant.Available)
	default:
		err = domain.ErrInvalidRole
	}
	if err != nil {
		return nil, mapError("create user profile", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapError("create user", err)
	}
	return &created, nil
}

// Update applies only the non-nil fields, then re-reads the record. An email
// change colliding with another user surfaces as ErrEmailTaken.
func (r *UserRepository) Update(ctx context.Context, id int64, fields domain.UserUpdate) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if fields.Email != nil {
		add("email", *fields.Email)
	}
	if fields.FirstName != nil {
		add("first_name", *fields.FirstName)
	}
	if fields.LastName != nil {
		add("last_name", *fields.LastName)
	}
	if fields.DateOfBirth != nil {
		add("date_of_birth", *fields.DateOfBirth)
	}

	if len(set) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
		tag, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			return nil, mapError("update user", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, domain.ErrUserNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// Delete removes the role row and the root row in one transaction. The
// record becomes unresolvable by any subsequent lookup, including lookups
// embedded in still-valid tokens.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return mapError("delete user", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM clients WHERE user_id = $1`, id); err != nil {
		return mapError("delete user", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM assistants WHERE user_id = $1`, id); err != nil {
		return mapError("delete user", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError("delete user", err)
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u        domain.User
		handicap *string
		avail    *bool
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName, &u.LastName,
		&u.DateOfBirth, &u.CreatedAt, &handicap, &avail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, mapError("find user", err)
	}

	switch u.Role {
	case domain.RoleClient:
		if handicap != nil {
			u.Profile.Client = &domain.ClientProfile{HandicapType: domain.HandicapType(*handicap)}
		}
	case domain.RoleAssistant:
		available := true
		if avail != nil {
			available = *avail
		}
		u.Profile.Assistant = &domain.AssistantProfile{Available: available}
	}
	return &u, nil
}
