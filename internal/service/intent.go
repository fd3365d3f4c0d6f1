package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/financialking/budget-service/internal/models"
)

// Defaults applied when a screening request omits a count or ceiling
const (
	DefaultResultCount  = 10
	DefaultPriceCeiling = 500
)

var (
	stockKeywords = []string{"stock", "stocks", "share", "shares", "ticker"}

	boundPattern   = regexp.MustCompile(`\bunder\b|\bbelow\b|\bcheaper than\b|<=?`)
	countPattern   = regexp.MustCompile(`\b(?:top|give|suggest|list|show)\s+(?:me\s+)?(\d+)\b`)
	ceilingPattern = regexp.MustCompile(`(?:\bunder\b|\bbelow\b|\bcheaper than\b|<=?)\s*\$?(\d+)\b`)
	integerPattern = regexp.MustCompile(`\b\d+\b`)
)

// ParseIntent classifies free text as a bounded stock screening
// request and extracts its parameters. Classification requires a stock
// keyword plus either a bound keyword or a standalone integer.
// Extraction is first-match-wins over the lowercased text; missing
// patterns fall back to the defaults, never to an error.
func ParseIntent(text string) models.ScreeningIntent {
	intent := models.ScreeningIntent{
		ResultCount:  DefaultResultCount,
		PriceCeiling: DefaultPriceCeiling,
	}

	lowered := strings.ToLower(text)
	if !containsAnyWord(lowered, stockKeywords) {
		return intent
	}
	if !boundPattern.MatchString(lowered) && !integerPattern.MatchString(lowered) {
		return intent
	}
	intent.IsScreeningIntent = true

	if m := countPattern.FindStringSubmatch(lowered); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.ResultCount = n
		}
	}
	if m := ceilingPattern.FindStringSubmatch(lowered); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.PriceCeiling = n
		}
	}
	return intent
}

// containsAnyWord matches keywords on word boundaries so "stockholm"
// does not read as a stock request
func containsAnyWord(text string, keywords []string) bool {
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		for _, kw := range keywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}
