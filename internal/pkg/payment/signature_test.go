package payment

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature_Valid(t *testing.T) {
	t.Parallel()

	sum := sha512.Sum512([]byte("ORD123" + "200" + "50000.00" + "server-key"))
	sig := hex.EncodeToString(sum[:])

	assert.True(t, VerifySignature("ORD123", "200", "50000", sig, "server-key"))
}

func TestVerifySignature_SingleCharacterMutation(t *testing.T) {
	t.Parallel()

	sum := sha512.Sum512([]byte("ORD123" + "200" + "50000.00" + "server-key"))
	sig := hex.EncodeToString(sum[:])

	for i := 0; i < len(sig); i += 17 {
		mutated := []byte(sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		assert.False(t, VerifySignature("ORD123", "200", "50000", string(mutated), "server-key"),
			"mutation at index %d must not verify", i)
	}
}

func TestVerifySignature_Rejects(t *testing.T) {
	t.Parallel()

	sum := sha512.Sum512([]byte("ORD123" + "200" + "50000.00" + "server-key"))
	sig := hex.EncodeToString(sum[:])

	assert.False(t, VerifySignature("ORD123", "200", "50000", "", "server-key"), "empty signature")
	assert.False(t, VerifySignature("ORD123", "200", "50000", sig, ""), "empty secret")
	assert.False(t, VerifySignature("ORD999", "200", "50000", sig, "server-key"), "different order")
	assert.False(t, VerifySignature("ORD123", "201", "50000", sig, "server-key"), "different status code")
	assert.False(t, VerifySignature("ORD123", "200", "50001", sig, "server-key"), "different amount")
	assert.False(t, VerifySignature("ORD123", "200", "not-a-number", sig, "server-key"), "malformed amount")
}

func TestFormatGrossAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "100", want: "100.00"},
		{in: "100.0", want: "100.00"},
		{in: "100.00", want: "100.00"},
		{in: "50000", want: "50000.00"},
		{in: "0.5", want: "0.50"},
		{in: "  250000.75 ", want: "250000.75"},
	}

	for _, tt := range tests {
		got, err := FormatGrossAmount(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatGrossAmount_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "abc", "12a", "--1"} {
		_, err := FormatGrossAmount(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: `"100"`, want: "100"},
		{raw: `100`, want: "100"},
		{raw: `100.0`, want: "100.0"},
		{raw: `"50000.00"`, want: "50000.00"},
	}

	for _, tt := range tests {
		var a Amount
		require.NoError(t, a.UnmarshalJSON([]byte(tt.raw)), "raw %s", tt.raw)
		assert.Equal(t, tt.want, a.String(), "raw %s", tt.raw)
	}
}
