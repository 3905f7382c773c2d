package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// LuggageRepository persists luggage records in the relational store.
type LuggageRepository struct {
	db DB
}

func NewLuggageRepository(db DB) *LuggageRepository {
	return &LuggageRepository{db: db}
}

const luggageSelect = `SELECT id, user_id, luggage_type, position, status, created_at FROM luggage`

func (r *LuggageRepository) Create(ctx context.Context, l *domain.Luggage) (*domain.Luggage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *l
	err := r.db.QueryRow(ctx,
		`INSERT INTO luggage (user_id, luggage_type, position, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		l.UserID, l.Type, l.Position, l.Status,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, mapError("create luggage", err)
	}
	return &created, nil
}

func (r *LuggageRepository) FindByID(ctx context.Context, id int64) (*domain.Luggage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.scanLuggage(r.db.QueryRow(ctx, luggageSelect+" WHERE id = $1", id))
}

func (r *LuggageRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Luggage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, luggageSelect+" WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, mapError("list luggage", err)
	}
	defer rows.Close()

	var items []*domain.Luggage
	for rows.Next() {
		l, err := r.scanLuggage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list luggage", err)
	}
	return items, nil
}

func (r *LuggageRepository) Update(ctx context.Context, id int64, fields domain.LuggageUpdate) (*domain.Luggage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := make([]string, 0, 3)
	args := make([]any, 0, 4)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if fields.Type != nil {
		add("luggage_type", *fields.Type)
	}
	if fields.Position != nil {
		add("position", *fields.Position)
	}
	if fields.Status != nil {
		add("status", *fields.Status)
	}

	if len(set) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE luggage SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
		tag, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			return nil, mapError("update luggage", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, domain.ErrLuggageNotFound
		}
	}

	return r.FindByID(ctx, id)
}

func (r *LuggageRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM luggage WHERE id = $1`, id)
	if err != nil {
		return mapError("delete luggage", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLuggageNotFound
	}
	return nil
}

func (r *LuggageRepository) scanLuggage(row pgx.Row) (*domain.Luggage, error) {
	var l domain.Luggage
	err := row.Scan(&l.ID, &l.UserID, &l.Type, &l.Position, &l.Status, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLuggageNotFound
		}
		return nil, mapError("find luggage", err)
	}
	return &l, nil
}
