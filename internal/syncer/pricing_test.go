package syncer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"19'990.00 руб.", "19990"},
		{"5 990 руб.", "5990"},
		{"1,299.99", "1299"},
		{"100.00", "100"},
		{"100", "100"},
		{"no digits here", ""},
		{"X̅MX̅CMXC", ""},
		{"", ""},
		{".50", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePrice(tc.in), "input %q", tc.in)
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("19'990.00 руб.")
	require.NoError(t, err)
	assert.Equal(t, int64(19990), amount)
}

func TestParseAmountNoDigits(t *testing.T) {
	_, err := ParseAmount("no digits here")
	require.Error(t, err)

	var derr *DataIntegrityError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "price", derr.Field)
}
