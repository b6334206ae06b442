package parser

// Config externalizes the keyword sets and limits driving the extraction
// heuristics, so they can be tuned or tested without touching the scan logic.
type Config struct {
	// StoreKeywords mark a line as a likely merchant name when found
	// (case-insensitive) in the top of the receipt.
	StoreKeywords []string `toml:"store_keywords"`

	// SkipKeywords mark receipt boilerplate lines that must never become
	// items (totals, payment lines, register metadata).
	SkipKeywords []string `toml:"skip_keywords"`

	// StoreScanLines bounds how many leading lines are considered for the
	// store name.
	StoreScanLines int `toml:"store_scan_lines"`

	// MaxItemPrice rejects price tokens at or above this value when pairing
	// item names with prices; large numbers are usually totals or card
	// digits, not line items.
	MaxItemPrice float64 `toml:"max_item_price"`
}

// DefaultConfig returns the heuristic set tuned for US grocery receipts.
func DefaultConfig() Config {
	return Config{
		StoreKeywords: []string{
			"STORE", "MARKET", "SHOP", "GROCERY", "SUPER", "MART", "FOOD", "SAVE",
		},
		SkipKeywords: []string{
			"TOTAL", "SUBTOTAL", "TAX", "CASH", "CHANGE", "ITEMS SOLD",
			"DISCOUNT", "RP", "T#", "OPEN", "HOURS",
		},
		StoreScanLines: 5,
		MaxItemPrice:   100,
	}
}

// merged fills zero-value fields with defaults so a partially specified
// config (for example from a TOML file) still behaves sensibly.
func (c Config) merged() Config {
	def := DefaultConfig()
	if len(c.StoreKeywords) == 0 {
		c.StoreKeywords = def.StoreKeywords
	}
	if len(c.SkipKeywords) == 0 {
		c.SkipKeywords = def.SkipKeywords
	}
	if c.StoreScanLines <= 0 {
		c.StoreScanLines = def.StoreScanLines
	}
	if c.MaxItemPrice <= 0 {
		c.MaxItemPrice = def.MaxItemPrice
	}
	return c
}
