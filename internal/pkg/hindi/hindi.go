// Package hindi transliterates Latin display names to Devanagari for the
// bilingual dashboard. Business terms and known proper names come from an
// override table; everything else falls back to a rough phonetic mapping.
// Fully offline.
package hindi

import (
	"regexp"
	"strings"
	"sync"
)

var overrides = map[string]string{
	"godown":    "गोदाम",
	"warehouse": "गोदाम",
	"agro":      "एग्रो",
	"shree":     "श्री",
	"seller":    "सेलर",
	"stockist":  "स्टॉकिस्ट",
	"loan":      "लोन",
	"payment":   "पेमेंट",
	"purchase":  "परचेज",
	"company":   "कंपनी",
	"wheat":     "गेहूं",
	"maize":     "मक्का",
	"bimal":     "बिमल",
	"kumari":    "कुमारी",
}

var tokenRe = regexp.MustCompile(`[A-Za-z]+|\d+|[^\sA-Za-z\d]+|\s+`)

var cache sync.Map // string → string

// Name transliterates a display name. Non-letter tokens (digits,
// punctuation, spacing) pass through unchanged.
func Name(value string) string {
	if value == "" {
		return value
	}
	if cached, ok := cache.Load(value); ok {
		return cached.(string)
	}

	var out strings.Builder
	for _, tok := range tokenRe.FindAllString(value, -1) {
		if !isAlpha(tok) {
			out.WriteString(tok)
			continue
		}
		lower := strings.ToLower(tok)
		if hi, ok := overrides[lower]; ok {
			out.WriteString(hi)
			continue
		}
		out.WriteString(phoneticWord(lower))
	}

	result := out.String()
	cache.Store(value, result)
	return result
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}

var digraphs = []struct{ from, to string }{
	{"chh", "छ"}, {"sh", "श"}, {"ch", "च"},
	{"kh", "ख"}, {"gh", "घ"}, {"th", "थ"}, {"dh", "ध"},
	{"ph", "फ"}, {"bh", "भ"}, {"wh", "व"}, {"qu", "क्व"},
	{"aa", "आ"}, {"ee", "ई"}, {"oo", "ऊ"}, {"ai", "ऐ"}, {"au", "औ"},
}

var singles = map[rune]string{
	'a': "अ", 'e': "ए", 'i': "इ", 'o': "ओ", 'u': "उ",
	'k': "क", 'g': "ग", 'c': "क", 'j': "ज", 't': "त", 'd': "द", 'n': "न",
	'p': "प", 'b': "ब", 'm': "म", 'y': "य", 'r': "र", 'l': "ल", 'v': "व", 'w': "व",
	's': "स", 'h': "ह", 'q': "क", 'x': "क्स", 'z': "ज़", 'f': "फ",
}

// phoneticWord is a very light fallback; rely on the override table for
// business terms and common names.
func phoneticWord(w string) string {
	for _, d := range digraphs {
		w = strings.ReplaceAll(w, d.from, d.to)
	}
	var out strings.Builder
	for _, r := range w {
		if hi, ok := singles[r]; ok {
			out.WriteString(hi)
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}
