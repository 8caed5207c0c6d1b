// Queries from products.sql.

package db

import (
	"context"
	"database/sql"
)

const countActiveProducts = `-- name: CountActiveProducts :one
SELECT COUNT(*) FROM products WHERE is_active = 1
`

func (q *Queries) CountActiveProducts(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countActiveProducts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countProducts = `-- name: CountProducts :one
SELECT COUNT(*) FROM products
`

func (q *Queries) CountProducts(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countProducts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createProduct = `-- name: CreateProduct :one
INSERT INTO products (
    id, rank, slug, badge, name, tagline, price, rating, images, specs,
    best_for, not_best_for, brief_review, full_review, materials, scores,
    pros, cons, faqs, affiliate_link, cta_text, is_active
) VALUES (
    ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
    ?, ?, ?, ?, ?, ?,
    ?, ?, ?, ?, ?, ?
)
RETURNING id, rank, slug, badge, name, tagline, price, rating, images, specs, best_for, not_best_for, brief_review, full_review, materials, scores, pros, cons, faqs, affiliate_link, cta_text, is_active, created_at, updated_at
`

type CreateProductParams struct {
	ID            string          `json:"id"`
	Rank          int64           `json:"rank"`
	Slug          string          `json:"slug"`
	Badge         sql.NullString  `json:"badge"`
	Name          string          `json:"name"`
	Tagline       sql.NullString  `json:"tagline"`
	Price         sql.NullString  `json:"price"`
	Rating        sql.NullFloat64 `json:"rating"`
	Images        sql.NullString  `json:"images"`
	Specs         sql.NullString  `json:"specs"`
	BestFor       sql.NullString  `json:"best_for"`
	NotBestFor    sql.NullString  `json:"not_best_for"`
	BriefReview   sql.NullString  `json:"brief_review"`
	FullReview    sql.NullString  `json:"full_review"`
	Materials     sql.NullString  `json:"materials"`
	Scores        sql.NullString  `json:"scores"`
	Pros          sql.NullString  `json:"pros"`
	Cons          sql.NullString  `json:"cons"`
	Faqs          sql.NullString  `json:"faqs"`
	AffiliateLink sql.NullString  `json:"affiliate_link"`
	CtaText       sql.NullString  `json:"cta_text"`
	IsActive      bool            `json:"is_active"`
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRowContext(ctx, createProduct,
		arg.ID,
		arg.Rank,
		arg.Slug,
		arg.Badge,
		arg.Name,
		arg.Tagline,
		arg.Price,
		arg.Rating,
		arg.Images,
		arg.Specs,
		arg.BestFor,
		arg.NotBestFor,
		arg.BriefReview,
		arg.FullReview,
		arg.Materials,
		arg.Scores,
		arg.Pros,
		arg.Cons,
		arg.Faqs,
		arg.AffiliateLink,
		arg.CtaText,
		arg.IsActive,
	)
	var i Product
	err := scanProduct(row, &i)
	return i, err
}

const deleteProduct = `-- name: DeleteProduct :one
DELETE FROM products
WHERE id = ?
RETURNING id, rank, slug, badge, name, tagline, price, rating, images, specs, best_for, not_best_for, brief_review, full_review, materials, scores, pros, cons, faqs, affiliate_link, cta_text, is_active, created_at, updated_at
`

func (q *Queries) DeleteProduct(ctx context.Context, id string) (Product, error) {
	row := q.db.QueryRowContext(ctx, deleteProduct, id)
	var i Product
	err := scanProduct(row, &i)
	return i, err
}

const getMaxProductRank = `-- name: GetMaxProductRank :one
SELECT CAST(COALESCE(MAX(rank), 0) AS INTEGER) AS max_rank FROM products
`

func (q *Queries) GetMaxProductRank(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, getMaxProductRank)
	var max_rank int64
	err := row.Scan(&max_rank)
	return max_rank, err
}

const getProduct = `-- name: GetProduct :one
SELECT id, rank, slug, badge, name, tagline, price, rating, images, specs, best_for, not_best_for, brief_review, full_review, materials, scores, pros, cons, faqs, affiliate_link, cta_text, is_active, created_at, updated_at FROM products
WHERE id = ?
`

func (q *Queries) GetProduct(ctx context.Context, id string) (Product, error) {
	row := q.db.QueryRowContext(ctx, getProduct, id)
	var i Product
	err := scanProduct(row, &i)
	return i, err
}

const getProductBySlug = `-- name: GetProductBySlug :one
SELECT id, rank, slug, badge, name, tagline, price, rating, images, specs, best_for, not_best_for, brief_review, full_review, materials, scores, pros, cons, faqs, affiliate_link, cta_text, is_active, created_at, updated_at FROM products
WHERE slug = ?
`

func (q *Queries) GetProductBySlug(ctx context.Context, slug string) (Product, error) {
	row := q.db.QueryRowContext(ctx, getProductBySlug, slug)
	var i Product
	err := scanProduct(row, &i)
	return i, err
}

const listActiveProducts = `-- name: ListActiveProducts :many
SELECT id, rank, slug, badge, name, tagline, price, rating, images, specs, best_for, not_best_for, brief_review, full_review, materials, scores, pros, cons, faqs, affiliate_link, cta_text, is_active, created_at, updated_at FROM products
WHERE is_active = 1
ORDER BY rank ASC, created_at ASC, id ASC
`

func (q *Queries) ListActiveProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx, listActiveProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

const listProducts = `-- name: ListProducts :many
SELECT id, rank, slug, badge, name, tagline, price, rating, images, specs, best_for, not_best_for, brief_review, full_review, materials, scores, pros, cons, faqs, affiliate_link, cta_text, is_active, created_at, updated_at FROM products
ORDER BY rank ASC, created_at ASC, id ASC
`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

const updateProduct = `-- name: UpdateProduct :one
UPDATE products SET
    rank = COALESCE(?1, rank),
    slug = COALESCE(?2, slug),
    badge = COALESCE(?3, badge),
    name = COALESCE(?4, name),
    tagline = COALESCE(?5, tagline),
    price = COALESCE(?6, price),
    rating = COALESCE(?7, rating),
    images = COALESCE(?8, images),
    specs = COALESCE(?9, specs),
    best_for = COALESCE(?10, best_for),
    not_best_for = COALESCE(?11, not_best_for),
    brief_review = COALESCE(?12, brief_review),
    full_review = COALESCE(?13, full_review),
    materials = COALESCE(?14, materials),
    scores = COALESCE(?15, scores),
    pros = COALESCE(?16, pros),
    cons = COALESCE(?17, cons),
    faqs = COALESCE(?18, faqs),
    affiliate_link = COALESCE(?19, affiliate_link),
    cta_text = COALESCE(?20, cta_text),
    is_active = COALESCE(?21, is_active),
    updated_at = CURRENT_TIMESTAMP
WHERE id = ?22
RETURNING id, rank, slug, badge, name, tagline, price, rating, images, specs, best_for, not_best_for, brief_review, full_review, materials, scores, pros, cons, faqs, affiliate_link, cta_text, is_active, created_at, updated_at
`

type UpdateProductParams struct {
	Rank          sql.NullInt64   `json:"rank"`
	Slug          sql.NullString  `json:"slug"`
	Badge         sql.NullString  `json:"badge"`
	Name          sql.NullString  `json:"name"`
	Tagline       sql.NullString  `json:"tagline"`
	Price         sql.NullString  `json:"price"`
	Rating        sql.NullFloat64 `json:"rating"`
	Images        sql.NullString  `json:"images"`
	Specs         sql.NullString  `json:"specs"`
	BestFor       sql.NullString  `json:"best_for"`
	NotBestFor    sql.NullString  `json:"not_best_for"`
	BriefReview   sql.NullString  `json:"brief_review"`
	FullReview    sql.NullString  `json:"full_review"`
	Materials     sql.NullString  `json:"materials"`
	Scores        sql.NullString  `json:"scores"`
	Pros          sql.NullString  `json:"pros"`
	Cons          sql.NullString  `json:"cons"`
	Faqs          sql.NullString  `json:"faqs"`
	AffiliateLink sql.NullString  `json:"affiliate_link"`
	CtaText       sql.NullString  `json:"cta_text"`
	IsActive      sql.NullBool    `json:"is_active"`
	ID            string          `json:"id"`
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRowContext(ctx, updateProduct,
		arg.Rank,
		arg.Slug,
		arg.Badge,
		arg.Name,
		arg.Tagline,
		arg.Price,
		arg.Rating,
		arg.Images,
		arg.Specs,
		arg.BestFor,
		arg.NotBestFor,
		arg.BriefReview,
		arg.FullReview,
		arg.Materials,
		arg.Scores,
		arg.Pros,
		arg.Cons,
		arg.Faqs,
		arg.AffiliateLink,
		arg.CtaText,
		arg.IsActive,
		arg.ID,
	)
	var i Product
	err := scanProduct(row, &i)
	return i, err
}

const updateProductRank = `-- name: UpdateProductRank :execrows
UPDATE products SET rank = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateProductRankParams struct {
	Rank int64  `json:"rank"`
	ID   string `json:"id"`
}

func (q *Queries) UpdateProductRank(ctx context.Context, arg UpdateProductRankParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateProductRank, arg.Rank, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner, i *Product) error {
	return row.Scan(
		&i.ID,
		&i.Rank,
		&i.Slug,
		&i.Badge,
		&i.Name,
		&i.Tagline,
		&i.Price,
		&i.Rating,
		&i.Images,
		&i.Specs,
		&i.BestFor,
		&i.NotBestFor,
		&i.BriefReview,
		&i.FullReview,
		&i.Materials,
		&i.Scores,
		&i.Pros,
		&i.Cons,
		&i.Faqs,
		&i.AffiliateLink,
		&i.CtaText,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	var items []Product
	for rows.Next() {
		var i Product
		if err := scanProduct(rows, &i); err != nil {
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
