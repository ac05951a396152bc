package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DecimalsFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, 6, DecimalsFor("BTC"))
	require.Equal(t, 5, DecimalsFor("ETH"))
	require.Equal(t, 2, DecimalsFor("ZAR"))
	require.Equal(t, 2, DecimalsFor("USDT"))
	require.Equal(t, DefaultDecimals, DecimalsFor("XRP"))
}

func Test_PrecisionTable_Overrides(t *testing.T) {
	t.Parallel()

	tbl := NewPrecisionTable(map[string]int{"BTC": 8, "BAD": -1})
	require.Equal(t, 8, tbl.DecimalsFor("BTC"))
	require.Equal(t, 5, tbl.DecimalsFor("ETH"))
	require.Equal(t, DefaultDecimals, tbl.DecimalsFor("BAD"))
}

func Test_FloorToDecimals_NeverRoundsUp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.99, FloorToDecimals(1.999999, 2))
	require.Equal(t, 0.0099, FloorToDecimals(0.00999999, 4))
	require.Equal(t, 5.0, FloorToDecimals(5.0, 2))
	require.Equal(t, 1.0, FloorToDecimals(1.9, 0))
}

func Test_FloorToDecimals_InvalidInput(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, FloorToDecimals(math.NaN(), 2))
	require.Equal(t, 0.0, FloorToDecimals(math.Inf(1), 2))
	require.Equal(t, 0.0, FloorToDecimals(-3.21, 2))
}

func Test_FormatAmount_RoundsNearest(t *testing.T) {
	t.Parallel()

	// Display path rounds to nearest; submission path must floor. The two
	// must stay distinct: 1.999 ZAR displays as 2 but floors to 1.99.
	require.Equal(t, "2", FormatAmount("ZAR", 1.999))
	require.Equal(t, 1.99, FloorToDecimals(1.999, DecimalsFor("ZAR")))
}

func Test_FormatAmount_Grouping(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1,200,000", FormatAmount("ZAR", 1200000))
	require.Equal(t, "1,234.56", FormatAmount("USD", 1234.56))
}

func Test_FormatAmount_NonFinite(t *testing.T) {
	t.Parallel()

	require.Equal(t, "–", FormatAmount("BTC", math.NaN()))
	require.Equal(t, "–", FormatAmount("BTC", math.Inf(1)))
	require.Equal(t, "–", FormatAmount("BTC", math.Inf(-1)))
}
