package domain

// AssetCatalog is the set of tradable symbols derived from the market feed.
// Slices keep first-appearance order; duplicates collapse.
type AssetCatalog struct {
	Cryptos []string `json:"cryptos"`
	Fiats   []string `json:"fiats"`
	All     []string `json:"all"`
}

// Fallback symbols used while the feed is empty or still loading. The UI
// must never be left with zero selectable assets.
var (
	fallbackCryptos = []string{"BTC", "ETH", "USDT"}
	fallbackFiats   = []string{"ZAR", "USD", "EUR"}
)

// FallbackCatalog returns the fixed catalog used when no market data is
// available.
func FallbackCatalog() AssetCatalog {
	c := AssetCatalog{
		Cryptos: append([]string(nil), fallbackCryptos...),
		Fiats:   append([]string(nil), fallbackFiats...),
	}
	c.All = union(c.Cryptos, c.Fiats)
	return c
}

// ExtractCatalog derives the asset catalog from a quote list. The BASE of
// every well-formed pair joins Cryptos, the QUOTE joins Fiats; malformed
// pairs are skipped. An empty result falls back to FallbackCatalog.
func ExtractCatalog(quotes []MarketQuote) AssetCatalog {
	var c AssetCatalog
	seenCrypto := map[string]bool{}
	seenFiat := map[string]bool{}
	for _, q := range quotes {
		base, quote, ok := SplitPair(q.Pair)
		if !ok {
			continue
		}
		if !seenCrypto[base] {
			seenCrypto[base] = true
			c.Cryptos = append(c.Cryptos, base)
		}
		if !seenFiat[quote] {
			seenFiat[quote] = true
			c.Fiats = append(c.Fiats, quote)
		}
	}
	if len(c.Cryptos) == 0 && len(c.Fiats) == 0 {
		return FallbackCatalog()
	}
	c.All = union(c.Cryptos, c.Fiats)
	return c
}

func union(a, b []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
