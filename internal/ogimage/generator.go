package ogimage

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	Width  = 1200
	Height = 630
)

// Card is the text and palette of one product share image.
type Card struct {
	SiteName   string
	Name       string
	Badge      string
	Tagline    string
	Rating     float64
	Price      string
	Background string
	Text       string
	Accent     string
	ButtonBg   string
	ButtonText string
}

var (
	fontsOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	fontsErr  error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regular, fontsErr = truetype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		bold, fontsErr = truetype.Parse(gobold.TTF)
	})
	return fontsErr
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// Render draws the card as a PNG into w.
func Render(w io.Writer, card Card) error {
	if err := loadFonts(); err != nil {
		slog.Error("failed to parse font", "error", err)
		return fmt.Errorf("parse font: %w", err)
	}

	dc := gg.NewContext(Width, Height)
	setHex(dc, card.Background, "#1a1a2e")
	dc.Clear()

	// Accent stripe along the left edge.
	setHex(dc, card.Accent, "#e94560")
	dc.DrawRectangle(0, 0, 24, Height)
	dc.Fill()

	setHex(dc, card.Text, "#ffffff")
	dc.SetFontFace(face(regular, 30))
	dc.DrawString(truncateText(card.SiteName, 60), 80, 90)

	if card.Badge != "" {
		dc.SetFontFace(face(bold, 28))
		bw, _ := dc.MeasureString(card.Badge)
		setHex(dc, card.Accent, "#e94560")
		dc.DrawRoundedRectangle(80, 130, bw+40, 52, 26)
		dc.Fill()
		setHex(dc, card.ButtonText, "#ffffff")
		dc.DrawStringAnchored(card.Badge, 100, 156, 0, 0.35)
	}

	setHex(dc, card.Text, "#ffffff")
	dc.SetFontFace(face(bold, 72))
	dc.DrawStringWrapped(truncateText(card.Name, 48), 80, 230, 0, 0, Width-160, 1.15, gg.AlignLeft)

	if card.Tagline != "" {
		dc.SetFontFace(face(regular, 34))
		dc.DrawString(truncateText(card.Tagline, 60), 80, 440)
	}

	dc.SetFontFace(face(bold, 40))
	if card.Rating > 0 {
		dc.DrawString(fmt.Sprintf("Rating %.1f", card.Rating), 80, 540)
	}

	if card.Price != "" {
		pw, _ := dc.MeasureString(card.Price)
		x := float64(Width) - 80 - pw - 48
		setHex(dc, card.ButtonBg, "#e94560")
		dc.DrawRoundedRectangle(x, 490, pw+48, 72, 12)
		dc.Fill()
		setHex(dc, card.ButtonText, "#ffffff")
		dc.DrawStringAnchored(card.Price, x+24, 526, 0, 0.35)
	}

	if err := png.Encode(w, dc.Image()); err != nil {
		slog.Error("failed to encode PNG", "error", err)
		return fmt.Errorf("encode PNG: %w", err)
	}

	slog.Debug("rendered share card", "product", card.Name)
	return nil
}

// setHex applies a #rgb or #rrggbb colour and falls back when the stored
// value is not one.
func setHex(dc *gg.Context, hex, fallback string) {
	if !validHex(hex) {
		hex = fallback
	}
	dc.SetHexColor(hex)
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// truncateText shortens text to maxLength runes.
func truncateText(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxLength-3]) + "..."
}
