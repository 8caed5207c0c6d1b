package content

import (
	"slices"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/loganlanou/reviewhub/storage/db"
)

type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	OGImage     string   `json:"ogImage"`
}

// Colors holds the ten themable hex values: brand, header, footer and
// button groups.
type Colors struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	HeaderBg    string `json:"headerBg"`
	HeaderText  string `json:"headerText"`
	FooterBg    string `json:"footerBg"`
	FooterText  string `json:"footerText"`
	ButtonBg    string `json:"buttonBg"`
	ButtonText  string `json:"buttonText"`
	ButtonHover string `json:"buttonHover"`
}

type Typography struct {
	HeadingWeight string `json:"headingWeight"`
	BodyWeight    string `json:"bodyWeight"`
	HeadingItalic bool   `json:"headingItalic"`
	BodyItalic    bool   `json:"bodyItalic"`
}

// HeadingWeights and BodyWeights are the selectable CSS font weights.
var (
	HeadingWeights = []string{"400", "500", "600", "700", "800", "900"}
	BodyWeights    = []string{"300", "400", "500", "600"}
)

type Tracking struct {
	GAID       string `json:"gaId"`
	GTMID      string `json:"gtmId"`
	FBPixelID  string `json:"fbPixelId"`
	CustomHead string `json:"customHead"`
}

// AISettings configures the content generation provider.
type AISettings struct {
	Provider  string `json:"provider"`
	OpenAIKey string `json:"openaiKey"`
	GeminiKey string `json:"geminiKey"`
	OllamaURL string `json:"ollamaUrl"`
	Model     string `json:"model"`
	Language  string `json:"language"`
}

type AdSlots struct {
	Header    string `json:"header"`
	Sidebar   string `json:"sidebar"`
	InFeed    string `json:"inFeed"`
	InArticle string `json:"inArticle"`
	Footer    string `json:"footer"`
}

type AdSense struct {
	Enabled     bool    `json:"enabled"`
	PublisherID string  `json:"publisherId"`
	Slots       AdSlots `json:"slots"`
}

// Active reports whether ad markup should be emitted.
func (a AdSense) Active() bool {
	return a.Enabled && a.PublisherID != ""
}

type Footer struct {
	Disclaimer string `json:"disclaimer"`
	Copyright  string `json:"copyright"`
}

// SiteConfig is the singleton site document. Every group is always present.
type SiteConfig struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Tagline    string     `json:"tagline"`
	Logo       string     `json:"logo"`
	Favicon    string     `json:"favicon"`
	SEO        SEO        `json:"seo"`
	Colors     Colors     `json:"colors"`
	Typography Typography `json:"typography"`
	Tracking   Tracking   `json:"tracking"`
	AI         AISettings `json:"ai"`
	AdSense    AdSense    `json:"adsense"`
	Footer     Footer     `json:"footer"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func DefaultColors() Colors {
	return Colors{
		Primary:     "#1e3a5f",
		Secondary:   "#0f172a",
		Accent:      "#f59e0b",
		HeaderBg:    "#1e3a5f",
		HeaderText:  "#ffffff",
		FooterBg:    "#0f172a",
		FooterText:  "#ffffff",
		ButtonBg:    "#f59e0b",
		ButtonText:  "#000000",
		ButtonHover: "#d97706",
	}
}

const (
	DefaultAIProvider = "openai"
	DefaultAIModel    = "gpt-4o-mini"
	DefaultLanguage   = "en"
)

// DefaultSiteConfig is the document used to fill anything storage lacks.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SEO:    SEO{Keywords: []string{}},
		Colors: DefaultColors(),
		Typography: Typography{
			HeadingWeight: "700",
			BodyWeight:    "400",
		},
		AI: AISettings{
			Provider: DefaultAIProvider,
			Model:    DefaultAIModel,
			Language: DefaultLanguage,
		},
	}
}

// SiteConfigFromRow maps the singleton row to a full document, filling
// absent or invalid values with defaults.
func SiteConfigFromRow(row db.SiteConfig) SiteConfig {
	s := DefaultSiteConfig()
	s.ID = row.ID
	s.Name = row.Name
	s.Tagline = row.Tagline.String
	s.Logo = row.Logo.String
	s.Favicon = row.Favicon.String
	s.CreatedAt = row.CreatedAt
	s.UpdatedAt = row.UpdatedAt

	decodeColumn("seo", row.Seo, &s.SEO)
	decodeColumn("colors", row.Colors, &s.Colors)
	decodeColumn("typography", row.Typography, &s.Typography)
	decodeColumn("tracking", row.Tracking, &s.Tracking)
	decodeColumn("ai", row.Ai, &s.AI)
	decodeColumn("adsense", row.Adsense, &s.AdSense)
	decodeColumn("footer", row.Footer, &s.Footer)

	return s.withDefaults()
}

func (s SiteConfig) withDefaults() SiteConfig {
	d := DefaultSiteConfig()
	s.SEO.Keywords = orEmpty(s.SEO.Keywords)

	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.Colors.Primary, d.Colors.Primary)
	fill(&s.Colors.Secondary, d.Colors.Secondary)
	fill(&s.Colors.Accent, d.Colors.Accent)
	fill(&s.Colors.HeaderBg, d.Colors.HeaderBg)
	fill(&s.Colors.HeaderText, d.Colors.HeaderText)
	fill(&s.Colors.FooterBg, d.Colors.FooterBg)
	fill(&s.Colors.FooterText, d.Colors.FooterText)
	fill(&s.Colors.ButtonBg, d.Colors.ButtonBg)
	fill(&s.Colors.ButtonText, d.Colors.ButtonText)
	fill(&s.Colors.ButtonHover, d.Colors.ButtonHover)

	if !slices.Contains(HeadingWeights, s.Typography.HeadingWeight) {
		s.Typography.HeadingWeight = d.Typography.HeadingWeight
	}
	if !slices.Contains(BodyWeights, s.Typography.BodyWeight) {
		s.Typography.BodyWeight = d.Typography.BodyWeight
	}

	fill(&s.AI.Provider, d.AI.Provider)
	fill(&s.AI.Model, d.AI.Model)
	fill(&s.AI.Language, d.AI.Language)
	return s
}

// Redacted blanks provider credentials for unauthenticated readers.
func (s SiteConfig) Redacted() SiteConfig {
	s.AI.OpenAIKey = ""
	s.AI.GeminiKey = ""
	return s
}

// SiteConfigPatch is a site document update. Present groups replace the
// stored group wholesale; absent groups keep their stored value.
type SiteConfigPatch struct {
	ID         string      `json:"id"`
	Name       *string     `json:"name"`
	Tagline    *string     `json:"tagline"`
	Logo       *string     `json:"logo"`
	Favicon    *string     `json:"favicon"`
	SEO        *SEO        `json:"seo"`
	Colors     *Colors     `json:"colors"`
	Typography *Typography `json:"typography"`
	Tracking   *Tracking   `json:"tracking"`
	AI         *AISettings `json:"ai"`
	AdSense    *AdSense    `json:"adsense"`
	Footer     *Footer     `json:"footer"`
}

// Params maps the present fields to a single-row update.
func (p SiteConfigPatch) Params(id string) db.UpdateSiteConfigParams {
	return db.UpdateSiteConfigParams{
		ID:         id,
		Name:       optString(p.Name),
		Tagline:    optString(p.Tagline),
		Logo:       optString(p.Logo),
		Favicon:    optString(p.Favicon),
		Seo:        optColumn(p.SEO),
		Colors:     optColumn(p.Colors),
		Typography: optColumn(p.Typography),
		Tracking:   optColumn(p.Tracking),
		Ai:         optColumn(p.AI),
		Adsense:    optColumn(p.AdSense),
		Footer:     optColumn(p.Footer),
	}
}

// ChangedGroups names the top-level fields whose patched value differs
// from current.
func (p SiteConfigPatch) ChangedGroups(current SiteConfig) []string {
	var changed []string
	check := func(name string, present bool, next, prev any) {
		if present && !cmp.Equal(next, prev, cmpopts.EquateEmpty()) {
			changed = append(changed, name)
		}
	}
	check("name", p.Name != nil, deref(p.Name), current.Name)
	check("tagline", p.Tagline != nil, deref(p.Tagline), current.Tagline)
	check("logo", p.Logo != nil, deref(p.Logo), current.Logo)
	check("favicon", p.Favicon != nil, deref(p.Favicon), current.Favicon)
	check("seo", p.SEO != nil, deref(p.SEO), current.SEO)
	check("colors", p.Colors != nil, deref(p.Colors), current.Colors)
	check("typography", p.Typography != nil, deref(p.Typography), current.Typography)
	check("tracking", p.Tracking != nil, deref(p.Tracking), current.Tracking)
	check("ai", p.AI != nil, deref(p.AI), current.AI)
	check("adsense", p.AdSense != nil, deref(p.AdSense), current.AdSense)
	check("footer", p.Footer != nil, deref(p.Footer), current.Footer)
	return changed
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
