// Queries from modules.sql.

package db

import (
	"context"
	"database/sql"
)

const getModule = `-- name: GetModule :one
SELECT id, enabled, display_order, content, created_at, updated_at FROM modules
WHERE id = ?
`

func (q *Queries) GetModule(ctx context.Context, id string) (Module, error) {
	row := q.db.QueryRowContext(ctx, getModule, id)
	var i Module
	err := row.Scan(
		&i.ID,
		&i.Enabled,
		&i.DisplayOrder,
		&i.Content,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listEnabledModules = `-- name: ListEnabledModules :many
SELECT id, enabled, display_order, content, created_at, updated_at FROM modules
WHERE enabled = 1
ORDER BY display_order ASC, id ASC
`

func (q *Queries) ListEnabledModules(ctx context.Context) ([]Module, error) {
	rows, err := q.db.QueryContext(ctx, listEnabledModules)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Module
	for rows.Next() {
		var i Module
		if err := rows.Scan(
			&i.ID,
			&i.Enabled,
			&i.DisplayOrder,
			&i.Content,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listModules = `-- name: ListModules :many
SELECT id, enabled, display_order, content, created_at, updated_at FROM modules
ORDER BY display_order ASC, id ASC
`

func (q *Queries) ListModules(ctx context.Context) ([]Module, error) {
	rows, err := q.db.QueryContext(ctx, listModules)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Module
	for rows.Next() {
		var i Module
		if err := rows.Scan(
			&i.ID,
			&i.Enabled,
			&i.DisplayOrder,
			&i.Content,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const setModuleEnabled = `-- name: SetModuleEnabled :execrows
UPDATE modules SET enabled = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type SetModuleEnabledParams struct {
	Enabled bool   `json:"enabled"`
	ID      string `json:"id"`
}

func (q *Queries) SetModuleEnabled(ctx context.Context, arg SetModuleEnabledParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setModuleEnabled, arg.Enabled, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const setModuleOrder = `-- name: SetModuleOrder :execrows
UPDATE modules SET display_order = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type SetModuleOrderParams struct {
	DisplayOrder int64  `json:"display_order"`
	ID           string `json:"id"`
}

func (q *Queries) SetModuleOrder(ctx context.Context, arg SetModuleOrderParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setModuleOrder, arg.DisplayOrder, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const updateModule = `-- name: UpdateModule :one
UPDATE modules SET
    enabled = COALESCE(?1, enabled),
    display_order = COALESCE(?2, display_order),
    content = COALESCE(?3, content),
    updated_at = CURRENT_TIMESTAMP
WHERE id = ?4
RETURNING id, enabled, display_order, content, created_at, updated_at
`

type UpdateModuleParams struct {
	Enabled      sql.NullBool   `json:"enabled"`
	DisplayOrder sql.NullInt64  `json:"display_order"`
	Content      sql.NullString `json:"content"`
	ID           string         `json:"id"`
}

func (q *Queries) UpdateModule(ctx context.Context, arg UpdateModuleParams) (Module, error) {
	row := q.db.QueryRowContext(ctx, updateModule,
		arg.Enabled,
		arg.DisplayOrder,
		arg.Content,
		arg.ID,
	)
	var i Module
	err := row.Scan(
		&i.ID,
		&i.Enabled,
		&i.DisplayOrder,
		&i.Content,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
