package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const baseZAR = "ZAR"

func snap(quotes ...MarketQuote) Snapshot {
	return NewSnapshot(quotes, baseZAR)
}

func Test_Rate_Identity(t *testing.T) {
	t.Parallel()

	// Identity holds even with zero market data.
	empty := snap()
	require.Equal(t, 1.0, empty.Rate("BTC", "BTC"))
	require.Equal(t, 1.0, empty.Rate("ZAR", "ZAR"))
	require.Equal(t, 1.0, empty.Rate("XXX", "XXX"))
}

func Test_Rate_Direct(t *testing.T) {
	t.Parallel()

	s := snap(MarketQuote{Pair: "BTC/ZAR", Price: "1200000"})
	require.Equal(t, 1200000.0, s.Rate("BTC", "ZAR"))
}

func Test_Rate_Reverse(t *testing.T) {
	t.Parallel()

	s := snap(MarketQuote{Pair: "BTC/ZAR", Price: "1200000"})
	require.InEpsilon(t, 1.0/1200000.0, s.Rate("ZAR", "BTC"), 1e-12)
}

func Test_Rate_CrossThroughBase(t *testing.T) {
	t.Parallel()

	s := snap(
		MarketQuote{Pair: "AAA/ZAR", Price: "10"},
		MarketQuote{Pair: "BBB/ZAR", Price: "2"},
	)
	require.Equal(t, 5.0, s.Rate("AAA", "BBB"))
	require.InEpsilon(t, 0.2, s.Rate("BBB", "AAA"), 1e-12)
}

func Test_Rate_CrossWithReverseLeg(t *testing.T) {
	t.Parallel()

	// ZAR-quoted leg present only in reverse orientation still resolves.
	s := snap(
		MarketQuote{Pair: "ZAR/AAA", Price: "0.1"}, // AAA/ZAR = 10
		MarketQuote{Pair: "BBB/ZAR", Price: "2"},
	)
	require.InEpsilon(t, 5.0, s.Rate("AAA", "BBB"), 1e-12)
}

func Test_Rate_NoPathReturnsZero(t *testing.T) {
	t.Parallel()

	s := snap(MarketQuote{Pair: "BTC/ZAR", Price: "1200000"})

	r := s.Rate("ETH", "BTC")
	require.Equal(t, 0.0, r)
	require.False(t, math.IsNaN(r))
	require.False(t, math.IsInf(r, 0))
}

func Test_Rate_MissingCrossLegPropagatesZero(t *testing.T) {
	t.Parallel()

	s := snap(MarketQuote{Pair: "AAA/ZAR", Price: "10"})
	require.Equal(t, 0.0, s.Rate("AAA", "BBB"))
	require.Equal(t, 0.0, s.Rate("BBB", "AAA"))
}

func Test_Rate_SingleHopOnly(t *testing.T) {
	t.Parallel()

	// AAA→USD→ZAR→BBB would need two hops; the resolver reports
	// unavailable instead of searching.
	s := snap(
		MarketQuote{Pair: "AAA/USD", Price: "3"},
		MarketQuote{Pair: "USD/ZAR", Price: "18.5"},
		MarketQuote{Pair: "BBB/ZAR", Price: "2"},
	)
	require.Equal(t, 0.0, s.Rate("AAA", "BBB"))
}

func Test_Rate_ZeroPriceIsNoMarket(t *testing.T) {
	t.Parallel()

	s := snap(MarketQuote{Pair: "BTC/ZAR", Price: "0"})
	require.Equal(t, 0.0, s.Rate("BTC", "ZAR"))
	require.Equal(t, 0.0, s.Rate("ZAR", "BTC"))
}

func Test_Rate_UnparsablePriceIsNoMarket(t *testing.T) {
	t.Parallel()

	s := snap(
		MarketQuote{Pair: "BTC/ZAR", Price: "not-a-number"},
		MarketQuote{Pair: "ETH/ZAR", Price: ""},
	)
	require.Equal(t, 0.0, s.Rate("BTC", "ZAR"))
	require.Equal(t, 0.0, s.Rate("ETH", "ZAR"))
}

func Test_PairAvailable_MatchesRate(t *testing.T) {
	t.Parallel()

	s := snap(
		MarketQuote{Pair: "BTC/ZAR", Price: "1200000"},
		MarketQuote{Pair: "ETH/ZAR", Price: "65000"},
	)

	cases := [][2]string{
		{"BTC", "ZAR"}, {"ZAR", "BTC"}, {"BTC", "ETH"},
		{"BTC", "BTC"}, {"BTC", "XRP"}, {"XRP", "DOGE"},
	}
	for _, c := range cases {
		require.Equal(t, s.Rate(c[0], c[1]) > 0, s.PairAvailable(c[0], c[1]),
			"availability diverged from rate for %s→%s", c[0], c[1])
	}
}
