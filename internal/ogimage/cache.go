package ogimage

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/views/helpers"
)

// ProductCard builds the share card for p in the site's palette.
func ProductCard(site content.SiteConfig, p content.Product) Card {
	card := Card{
		SiteName:   site.Name,
		Name:       p.Name,
		Badge:      p.Badge,
		Tagline:    p.Tagline,
		Rating:     p.Rating,
		Background: site.Colors.Primary,
		Text:       site.Colors.HeaderText,
		Accent:     site.Colors.Accent,
		ButtonBg:   site.Colors.ButtonBg,
		ButtonText: site.Colors.ButtonText,
	}
	if p.Price.Current > 0 {
		card.Price = helpers.FormatPrice(p.Price.Current, p.Price.Currency)
	}
	return card
}

// Key hashes everything drawn on the card, so an edited product or a new
// palette never hits a stale file.
func (c Card) Key() string {
	data, _ := json.Marshal(c)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Cache keeps rendered cards on disk as <slug>-<key>.png. A nil Cache or
// one without a directory renders on every call.
type Cache struct {
	dir string
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

func (c *Cache) enabled() bool {
	return c != nil && c.dir != ""
}

func (c *Cache) path(slug string, card Card) string {
	return filepath.Join(c.dir, FileName(slug, card))
}

// Has reports whether the card is already on disk.
func (c *Cache) Has(slug string, card Card) bool {
	if !c.enabled() {
		return false
	}
	_, err := os.Stat(c.path(slug, card))
	return err == nil
}

// Get returns the PNG for card, rendering and storing it on a miss. A
// failed write is logged and the rendered bytes are still returned.
func (c *Cache) Get(slug string, card Card) ([]byte, error) {
	if c.enabled() {
		if data, err := os.ReadFile(c.path(slug, card)); err == nil {
			return data, nil
		}
	}

	var buf bytes.Buffer
	if err := Render(&buf, card); err != nil {
		return nil, err
	}
	if c.enabled() {
		if err := c.store(c.path(slug, card), buf.Bytes()); err != nil {
			slog.Warn("failed to cache share card", "error", err, "slug", slug)
		}
	}
	return buf.Bytes(), nil
}

func (c *Cache) store(path string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(c.dir, ".card-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write card: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Prune removes cached cards whose file name is not in keep. It returns
// the number of files removed.
func (c *Cache) Prune(keep map[string]bool) (int, error) {
	if !c.enabled() {
		return 0, nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read cache dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") || keep[e.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			slog.Debug("failed to remove stale share card", "error", err, "file", e.Name())
			continue
		}
		removed++
	}
	return removed, nil
}

// FileName is the cache file name for slug and card.
func FileName(slug string, card Card) string {
	return fmt.Sprintf("%s-%s.png", slug, card.Key())
}
