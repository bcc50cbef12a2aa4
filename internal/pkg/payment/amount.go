package payment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount accepts both string and numeric JSON encodings. Midtrans sends
// gross_amount as a string ("50000.00") in notifications but as a number in
// other payloads.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) String() string {
	return string(a)
}

// FormatGrossAmount normalizes a gross amount to a fixed two-decimal-place
// string. The upstream signature is computed over this exact representation,
// so "100", "100.0" and 100 must all yield "100.00".
func FormatGrossAmount(raw string) (string, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", fmt.Errorf("payment: invalid gross amount %q: %w", raw, err)
	}
	return strconv.FormatFloat(f, 'f', 2, 64), nil
}
