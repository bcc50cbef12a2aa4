package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// ExpectedSignature computes the Midtrans notification signature: the
// hex-encoded SHA-512 of order_id + status_code + gross_amount + server key,
// where gross_amount is already formatted to two decimal places.
func ExpectedSignature(orderID, statusCode, formattedGrossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + formattedGrossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifySignature recomputes the expected signature from the notification
// fields and compares it against the received one. Comparison is timing-safe
// and case-sensitive. Pure function; never logs its inputs.
func VerifySignature(orderID, statusCode, grossAmount, receivedSignature, serverKey string) bool {
	sig := strings.TrimSpace(receivedSignature)
	if sig == "" || serverKey == "" {
		return false
	}

	formatted, err := FormatGrossAmount(grossAmount)
	if err != nil {
		return false
	}

	expected := ExpectedSignature(orderID, statusCode, formatted, serverKey)
	return hmac.Equal([]byte(expected), []byte(sig))
}
