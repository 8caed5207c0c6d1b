package db

import (
	"database/sql"
	"time"
)

type Module struct {
	ID           string         `json:"id"`
	Enabled      bool           `json:"enabled"`
	DisplayOrder int64          `json:"display_order"`
	Content      sql.NullString `json:"content"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type Product struct {
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
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type SiteConfig struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
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
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
