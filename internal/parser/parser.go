// Package parser recovers structured receipt data from noisy OCR text.
//
// Extraction is best-effort and never fails: fields that cannot be
// recognized are left empty, and malformed input degrades to an empty
// record rather than an error. The heuristics operate on normalized lines
// and rely on the original casing and punctuation of the text.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/splitscan/splitscan/internal/models"
)

// Patterns shared by the field and item scans.
var (
	// Two-decimal price token, e.g. "12.34".
	pricePattern = regexp.MustCompile(`[0-9]+\.[0-9]{2}`)
	// Amount token for keyword lines: prefer two-decimal, fall back to
	// a bare integer run.
	amountPattern = regexp.MustCompile(`[0-9]+\.[0-9]{2}|[0-9]+`)
	// At least three consecutive letters marks plausible product text.
	wordPattern = regexp.MustCompile(`[A-Za-z]{3,}`)
	// Five or more consecutive digits marks barcodes, card numbers, phone
	// numbers — never an item.
	longDigitsPattern = regexp.MustCompile(`[0-9]{5,}`)
	// A capitalized word, used for store names without keywords.
	properWordPattern = regexp.MustCompile(`[A-Z][a-z]+`)
	digitPattern      = regexp.MustCompile(`[0-9]`)
)

// Parser turns raw receipt text into a models.ReceiptRecord.
type Parser struct {
	cfg Config
}

// New returns a Parser using the given heuristic configuration. Zero-value
// fields of cfg fall back to DefaultConfig.
func New(cfg Config) *Parser {
	return &Parser{cfg: cfg.merged()}
}

// Parse runs the full extraction pipeline over raw OCR text.
func (p *Parser) Parse(text string) models.ReceiptRecord {
	lines := NormalizeLines(text)
	return models.ReceiptRecord{
		StoreName: p.extractStoreName(lines),
		Items:     p.extractItems(lines),
		Subtotal:  extractKeywordAmount(lines, "SUBTOTAL"),
		Tax:       extractKeywordAmount(lines, "TAX"),
		Total:     extractKeywordAmount(lines, "TOTAL"),
		// Date extraction is a placeholder for now; receipts date formats
		// vary too much for the current heuristics to be reliable.
		Date: "",
	}
}

// NormalizeLines trims the raw text into an ordered sequence of non-empty
// lines. Lines of a single character are dropped as OCR noise. Casing and
// punctuation are preserved because the downstream heuristics depend on them.
func NormalizeLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 1 {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractStoreName scans the leading lines for a plausible merchant name.
// A line qualifies if it is 3-49 characters, carries no price token, and
// either contains a store keyword or reads like a proper word with no
// digits. The first qualifying line wins.
func (p *Parser) extractStoreName(lines []string) string {
	limit := p.cfg.StoreScanLines
	if limit > len(lines) {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if len(line) <= 2 || len(line) >= 50 {
			continue
		}
		if pricePattern.MatchString(line) {
			continue
		}
		if containsAnyFold(line, p.cfg.StoreKeywords) {
			return line
		}
		if properWordPattern.MatchString(line) && !digitPattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractKeywordAmount returns the last amount token on the last line
// containing keyword (case-insensitive), or "" when no line matches.
// Later matches overwrite earlier ones so the bottom-most occurrence in
// document order wins, which is where receipts put the authoritative value.
func extractKeywordAmount(lines []string, keyword string) string {
	value := ""
	for _, line := range lines {
		if !strings.Contains(strings.ToUpper(line), keyword) {
			continue
		}
		amounts := amountPattern.FindAllString(line, -1)
		if len(amounts) > 0 {
			value = amounts[len(amounts)-1]
		}
	}
	return value
}

// extractItems scans for product-name/price pairs. OCR frequently splits an
// item and its price across consecutive lines, so a candidate line without
// an inline price gets one line of lookahead.
func (p *Parser) extractItems(lines []string) []models.ReceiptItem {
	var items []models.ReceiptItem
	for i, line := range lines {
		if containsAnyFold(line, p.cfg.SkipKeywords) {
			continue
		}
		if !p.isItemCandidate(line) {
			continue
		}

		if prices := pricePattern.FindAllString(line, -1); len(prices) > 0 && priceValue(prices[0]) < p.cfg.MaxItemPrice {
			name := strings.TrimSpace(pricePattern.ReplaceAllString(line, ""))
			if len(name) > 2 {
				items = append(items, models.ReceiptItem{Name: name, Price: prices[0]})
			}
		} else if i+1 < len(lines) {
			next := pricePattern.FindAllString(lines[i+1], -1)
			if len(next) > 0 && priceValue(next[0]) < p.cfg.MaxItemPrice {
				items = append(items, models.ReceiptItem{Name: line, Price: next[0]})
			}
		}
	}
	return items
}

// isItemCandidate filters lines that could plausibly name a product.
func (p *Parser) isItemCandidate(line string) bool {
	return wordPattern.MatchString(line) &&
		!longDigitsPattern.MatchString(line) &&
		len(line) > 3 && len(line) < 50
}

func priceValue(token string) float64 {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return v
}

func containsAnyFold(line string, keywords []string) bool {
	upper := strings.ToUpper(line)
	for _, kw := range keywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}
