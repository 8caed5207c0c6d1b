package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/loganlanou/reviewhub/storage/db"
)

// ErrUnknownModule is returned for a module id outside the fixed set.
var ErrUnknownModule = errors.New("unknown module")

// ModuleID names one of the fixed page sections.
type ModuleID string

const (
	ModuleHero         ModuleID = "hero"
	ModulePainPoints   ModuleID = "painPoints"
	ModuleStory        ModuleID = "story"
	ModuleMethod       ModuleID = "method"
	ModuleComparison   ModuleID = "comparison"
	ModuleProducts     ModuleID = "products"
	ModuleTestimonials ModuleID = "testimonials"
	ModuleFAQ          ModuleID = "faq"
)

// ModuleIDs lists every known module in default page order.
var ModuleIDs = []ModuleID{
	ModuleHero,
	ModulePainPoints,
	ModuleStory,
	ModuleMethod,
	ModuleComparison,
	ModuleProducts,
	ModuleTestimonials,
	ModuleFAQ,
}

func ParseModuleID(s string) (ModuleID, error) {
	for _, id := range ModuleIDs {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModule, s)
}

// ModuleContent is the per-section content schema. The set of
// implementations is closed: one type per ModuleID.
type ModuleContent interface {
	ModuleID() ModuleID
	normalize() ModuleContent
}

type HeroContent struct {
	Badge           string `json:"badge"`
	Headline        string `json:"headline"`
	Subheadline     string `json:"subheadline"`
	Highlight       string `json:"highlight"`
	CTAText         string `json:"ctaText"`
	CTALink         string `json:"ctaLink"`
	BackgroundImage string `json:"backgroundImage"`
	YouTubeURL      string `json:"youtubeUrl,omitempty"`
}

type PainPoint struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

type PainPointsContent struct {
	Title  string      `json:"title"`
	Image  string      `json:"image"`
	Points []PainPoint `json:"points"`
}

type StoryContent struct {
	Title      string   `json:"title"`
	Image      string   `json:"image"`
	Paragraphs []string `json:"paragraphs"`
}

type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type MethodContent struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Features []Feature `json:"features"`
}

type ComparisonRow struct {
	Type    string `json:"type"`
	Product string `json:"product"`
	Benefit string `json:"benefit"`
}

type ComparisonContent struct {
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Rows     []ComparisonRow `json:"rows"`
}

// DefaultShowCount applies when the products section leaves showCount unset.
const DefaultShowCount = 10

type ProductsContent struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ShowCount int    `json:"showCount"`
}

// Limit is the number of products the section renders.
func (c ProductsContent) Limit() int {
	if c.ShowCount <= 0 {
		return DefaultShowCount
	}
	return c.ShowCount
}

type Testimonial struct {
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Product string `json:"product"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

type TestimonialsContent struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []Testimonial `json:"items"`
}

type FAQContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Items    []FAQ  `json:"items"`
}

func (HeroContent) ModuleID() ModuleID         { return ModuleHero }
func (PainPointsContent) ModuleID() ModuleID   { return ModulePainPoints }
func (StoryContent) ModuleID() ModuleID        { return ModuleStory }
func (MethodContent) ModuleID() ModuleID       { return ModuleMethod }
func (ComparisonContent) ModuleID() ModuleID   { return ModuleComparison }
func (ProductsContent) ModuleID() ModuleID     { return ModuleProducts }
func (TestimonialsContent) ModuleID() ModuleID { return ModuleTestimonials }
func (FAQContent) ModuleID() ModuleID          { return ModuleFAQ }

func (c HeroContent) normalize() ModuleContent { return c }

func (c PainPointsContent) normalize() ModuleContent {
	c.Points = orEmpty(c.Points)
	return c
}

func (c StoryContent) normalize() ModuleContent {
	c.Paragraphs = orEmpty(c.Paragraphs)
	return c
}

func (c MethodContent) normalize() ModuleContent {
	c.Features = orEmpty(c.Features)
	return c
}

func (c ComparisonContent) normalize() ModuleContent {
	c.Rows = orEmpty(c.Rows)
	return c
}

func (c ProductsContent) normalize() ModuleContent { return c }

func (c TestimonialsContent) normalize() ModuleContent {
	c.Items = orEmpty(c.Items)
	return c
}

func (c FAQContent) normalize() ModuleContent {
	c.Items = orEmpty(c.Items)
	return c
}

// EmptyContent returns the zero content for id.
func EmptyContent(id ModuleID) (ModuleContent, error) {
	var c ModuleContent
	switch id {
	case ModuleHero:
		c = HeroContent{}
	case ModulePainPoints:
		c = PainPointsContent{}
	case ModuleStory:
		c = StoryContent{}
	case ModuleMethod:
		c = MethodContent{}
	case ModuleComparison:
		c = ComparisonContent{}
	case ModuleProducts:
		c = ProductsContent{}
	case ModuleTestimonials:
		c = TestimonialsContent{}
	case ModuleFAQ:
		c = FAQContent{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, id)
	}
	return c.normalize(), nil
}

// DecodeContent decodes raw JSON against the schema for id. Empty input
// yields empty content.
func DecodeContent(id ModuleID, raw []byte) (ModuleContent, error) {
	base, err := EmptyContent(id)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return base, nil
	}

	var decoded ModuleContent
	switch id {
	case ModuleHero:
		decoded, err = decodeAs[HeroContent](raw)
	case ModulePainPoints:
		decoded, err = decodeAs[PainPointsContent](raw)
	case ModuleStory:
		decoded, err = decodeAs[StoryContent](raw)
	case ModuleMethod:
		decoded, err = decodeAs[MethodContent](raw)
	case ModuleComparison:
		decoded, err = decodeAs[ComparisonContent](raw)
	case ModuleProducts:
		decoded, err = decodeAs[ProductsContent](raw)
	case ModuleTestimonials:
		decoded, err = decodeAs[TestimonialsContent](raw)
	case ModuleFAQ:
		decoded, err = decodeAs[FAQContent](raw)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s content: %w", id, err)
	}
	return decoded.normalize(), nil
}

func decodeAs[T ModuleContent](raw []byte) (ModuleContent, error) {
	var c T
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return c, nil
}

// Module is one page section with its typed content.
type Module struct {
	ID        ModuleID
	Enabled   bool
	Order     int64
	Content   ModuleContent
	CreatedAt time.Time
	UpdatedAt time.Time
}

type moduleJSON struct {
	ID        ModuleID        `json:"id"`
	Enabled   bool            `json:"enabled"`
	Order     int64           `json:"order"`
	Content   json.RawMessage `json:"content"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

func (m Module) MarshalJSON() ([]byte, error) {
	c := m.Content
	if c == nil {
		var err error
		if c, err = EmptyContent(m.ID); err != nil {
			return nil, err
		}
	}
	raw, err := json.Marshal(c.normalize())
	if err != nil {
		return nil, err
	}
	out := moduleJSON{ID: m.ID, Enabled: m.Enabled, Order: m.Order, Content: raw}
	if !m.CreatedAt.IsZero() {
		out.CreatedAt = &m.CreatedAt
	}
	if !m.UpdatedAt.IsZero() {
		out.UpdatedAt = &m.UpdatedAt
	}
	return json.Marshal(out)
}

// UnmarshalJSON dispatches the content on the module id and rejects ids
// outside the fixed set.
func (m *Module) UnmarshalJSON(data []byte) error {
	var in moduleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	id, err := ParseModuleID(string(in.ID))
	if err != nil {
		return err
	}
	c, err := DecodeContent(id, in.Content)
	if err != nil {
		return err
	}
	*m = Module{ID: id, Enabled: in.Enabled, Order: in.Order, Content: c}
	return nil
}

// ModuleFromRow maps a storage row to a module. Malformed stored content is
// logged and replaced by empty content; only an unknown id is an error.
func ModuleFromRow(row db.Module) (Module, error) {
	id, err := ParseModuleID(row.ID)
	if err != nil {
		return Module{}, err
	}
	var raw []byte
	if row.Content.Valid {
		raw = []byte(row.Content.String)
	}
	c, err := DecodeContent(id, raw)
	if err != nil {
		slog.Warn("ignoring malformed module content", "module", row.ID, "error", err)
		c, _ = EmptyContent(id)
	}
	return Module{
		ID:        id,
		Enabled:   row.Enabled,
		Order:     row.DisplayOrder,
		Content:   c,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// ModuleRow builds the full update parameters for a module.
func ModuleRow(m Module) db.UpdateModuleParams {
	c := m.Content
	if c == nil {
		c, _ = EmptyContent(m.ID)
	}
	return db.UpdateModuleParams{
		ID:           string(m.ID),
		Enabled:      sqlBool(m.Enabled),
		DisplayOrder: sqlInt(m.Order),
		Content:      encodeColumn(c),
	}
}

// ModulePatch is a partial module update. Enabled and Order patch
// independently of Content; Content replaces the whole section content.
type ModulePatch struct {
	ID      string          `json:"id"`
	Enabled *bool           `json:"enabled"`
	Order   *int64          `json:"order"`
	Content json.RawMessage `json:"content"`
}

// Params validates the patch content against the module schema and maps the
// present fields to update parameters.
func (p ModulePatch) Params() (db.UpdateModuleParams, error) {
	id, err := ParseModuleID(p.ID)
	if err != nil {
		return db.UpdateModuleParams{}, err
	}
	params := db.UpdateModuleParams{ID: string(id)}
	if p.Enabled != nil {
		params.Enabled = sqlBool(*p.Enabled)
	}
	if p.Order != nil {
		params.DisplayOrder = sqlInt(*p.Order)
	}
	if raw := bytes.TrimSpace(p.Content); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		c, err := DecodeContent(id, raw)
		if err != nil {
			return db.UpdateModuleParams{}, err
		}
		params.Content = encodeColumn(c)
	}
	return params, nil
}

// ReplaceItems swaps the list portion of a list-bearing module: testimonial
// and FAQ items, or comparison rows. Titles are kept.
func ReplaceItems(c ModuleContent, raw json.RawMessage) (ModuleContent, error) {
	switch v := c.(type) {
	case TestimonialsContent:
		if err := json.Unmarshal(raw, &v.Items); err != nil {
			return nil, fmt.Errorf("decode testimonial items: %w", err)
		}
		return v.normalize(), nil
	case FAQContent:
		if err := json.Unmarshal(raw, &v.Items); err != nil {
			return nil, fmt.Errorf("decode faq items: %w", err)
		}
		return v.normalize(), nil
	case ComparisonContent:
		if err := json.Unmarshal(raw, &v.Rows); err != nil {
			return nil, fmt.Errorf("decode comparison rows: %w", err)
		}
		return v.normalize(), nil
	default:
		return nil, fmt.Errorf("module %s has no item list", c.ModuleID())
	}
}
