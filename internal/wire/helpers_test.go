package wire

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := ParseTime(s)
	require.NoError(t, err)
	return ts
}
