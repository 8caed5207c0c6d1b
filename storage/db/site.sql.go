// Queries from site.sql.

package db

import (
	"context"
	"database/sql"
)

const getSiteConfig = `-- name: GetSiteConfig :one
SELECT id, name, tagline, logo, favicon, seo, colors, typography, tracking, ai, adsense, footer, created_at, updated_at FROM site_config
ORDER BY created_at ASC
LIMIT 1
`

func (q *Queries) GetSiteConfig(ctx context.Context) (SiteConfig, error) {
	row := q.db.QueryRowContext(ctx, getSiteConfig)
	var i SiteConfig
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Tagline,
		&i.Logo,
		&i.Favicon,
		&i.Seo,
		&i.Colors,
		&i.Typography,
		&i.Tracking,
		&i.Ai,
		&i.Adsense,
		&i.Footer,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateSiteConfig = `-- name: UpdateSiteConfig :one
UPDATE site_config SET
    name = COALESCE(?1, name),
    tagline = COALESCE(?2, tagline),
    logo = COALESCE(?3, logo),
    favicon = COALESCE(?4, favicon),
    seo = COALESCE(?5, seo),
    colors = COALESCE(?6, colors),
    typography = COALESCE(?7, typography),
    tracking = COALESCE(?8, tracking),
    ai = COALESCE(?9, ai),
    adsense = COALESCE(?10, adsense),
    footer = COALESCE(?11, footer),
    updated_at = CURRENT_TIMESTAMP
WHERE id = ?12
RETURNING id, name, tagline, logo, favicon, seo, colors, typography, tracking, ai, adsense, footer, created_at, updated_at
`

type UpdateSiteConfigParams struct {
	Name       sql.NullString `json:"name"`
	Tagline    sql.NullString `json:"tagline"`
	Logo       sql.NullString `json:"logo"`
	Favicon    sql.NullString `json:"favicon"`
	Seo        sql.NullString `json:"seo"`
	Colors     sql.NullString `json:"colors"`
	Typography sql.NullString `json:"typography"`
	Tracking   sql.NullString `json:"tracking"`
	Ai         sql.NullString `json:"ai"`
	Adsense    sql.NullString `json:"adsense"`
	Footer     sql.NullString `json:"footer"`
	ID         string         `json:"id"`
}

func (q *Queries) UpdateSiteConfig(ctx context.Context, arg UpdateSiteConfigParams) (SiteConfig, error) {
	row := q.db.QueryRowContext(ctx, updateSiteConfig,
		arg.Name,
		arg.Tagline,
		arg.Logo,
		arg.Favicon,
		arg.Seo,
		arg.Colors,
		arg.Typography,
		arg.Tracking,
		arg.Ai,
		arg.Adsense,
		arg.Footer,
		arg.ID,
	)
	var i SiteConfig
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Tagline,
		&i.Logo,
		&i.Favicon,
		&i.Seo,
		&i.Colors,
		&i.Typography,
		&i.Tracking,
		&i.Ai,
		&i.Adsense,
		&i.Footer,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
