package helpers

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"
)

var currencySymbols = map[string]string{
	"":    "$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"TWD": "NT$",
}

// FormatPrice renders an amount with its currency symbol and thousands
// separators (e.g., 1299 -> "$1,299", 19.5 -> "$19.50").
func FormatPrice(amount float64, currency string) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = strings.ToUpper(currency) + " "
	}
	whole := int64(math.Floor(amount))
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	if cents == 0 {
		return symbol + groupThousands(whole)
	}
	return fmt.Sprintf("%s%s.%02d", symbol, groupThousands(whole), cents)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}

// DiscountPercent is the saving of current over original, rounded.
func DiscountPercent(original, current float64) int {
	if original <= 0 || current >= original {
		return 0
	}
	return int(math.Round((original - current) / original * 100))
}

// FormatRating formats a 0-10 score with one decimal (e.g., 9.4 -> "9.4").
func FormatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// ScorePercent converts a 0-5 sub-score to a bar width.
func ScorePercent(score float64) int {
	return int(math.Round(math.Max(0, math.Min(score, 5)) / 5 * 100))
}

// Stars renders a 1-5 rating as filled and empty stars.
func Stars(n int) string {
	n = max(0, min(n, 5))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// FormatDate formats a time.Time as "Jan 2, 2006"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime formats a time.Time as "Jan 2, 2006 3:04 PM"
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// YouTubeEmbedURL turns a watch, share or shorts link into an embed URL.
// Anything else returns "".
func YouTubeEmbedURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}

	host := strings.TrimPrefix(u.Host, "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch host {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com", "youtube-nocookie.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = strings.TrimPrefix(u.Path, "/embed/")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.TrimPrefix(u.Path, "/shorts/")
		}
	}

	if id == "" || strings.ContainsAny(id, "/?&") {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}
