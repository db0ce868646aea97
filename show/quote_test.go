package show

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteString(t *testing.T) {
	for _, q := range []Quote{QUOTE_NONE, QUOTE_SINGLE, QUOTE_DOUBLE} {
		v, err := QuoteString(q.String())
		require.NoError(t, err)
		require.Equal(t, q, v)
	}

	v, err := QuoteString("")
	require.NoError(t, err)
	require.Equal(t, QUOTE_NONE, v)

	_, err = QuoteString("backticks")
	require.ErrorIs(t, err, ErrValue)

	require.Equal(t, "?", Quote(42).String())
}

func TestQuoteJSON(t *testing.T) {
	require.Equal(t, `"double"`, string(QUOTE_DOUBLE.ToJSON(nil)))

	var q Quote
	require.NoError(t, q.FromJSON([]byte(`"single"`)))
	require.Equal(t, QUOTE_SINGLE, q)

	err := q.FromJSON([]byte(`"backticks"`))
	require.ErrorIs(t, err, ErrValue)
	require.Equal(t, QUOTE_SINGLE, q) // unchanged on error
}
