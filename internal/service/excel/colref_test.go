package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestColumnToIndex_Known(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"A":   0,
		"Z":   25,
		"AA":  26,
		"AZ":  51,
		"BA":  52,
		"DY":  128,
		"ZZ":  701,
		"AAA": 702,
		"XFD": MaxColumnIndex,
	}
	for col, want := range cases {
		got, err := ColumnToIndex(col)
		require.NoError(t, err, col)
		assert.Equal(t, want, got, col)
	}
}

func TestColumnToIndex_Invalid(t *testing.T) {
	t.Parallel()

	for _, col := range []string{"", "a", "A1", "-", "XFE", "AAAA"} {
		_, err := ColumnToIndex(col)
		assert.Error(t, err, col)
	}
	assert.Equal(t, "", IndexToColumn(-1))
	assert.Equal(t, "", IndexToColumn(MaxColumnIndex+1))
}

func TestColumnRoundTrip(t *testing.T) {
	t.Parallel()

	for n := 0; n <= MaxColumnIndex; n++ {
		col := IndexToColumn(n)
		back, err := ColumnToIndex(col)
		require.NoError(t, err, "n=%d col=%s", n, col)
		require.Equal(t, n, back, "col=%s", col)

		// 与 excelize 的 1-based 列名保持一致
		want, err := excelize.ColumnNumberToName(n + 1)
		require.NoError(t, err)
		require.Equal(t, want, col)
	}
}
