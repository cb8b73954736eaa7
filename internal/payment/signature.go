package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Sign returns hex(HMAC-SHA256(secret, gatewayOrderID + "|" + gatewayPaymentID)),
// the signature the gateway attaches to a successful checkout.
func (v *Verifier) Sign(gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (v *Verifier) Verify(gatewayOrderID, gatewayPaymentID, signature string) error {
	expected := v.Sign(gatewayOrderID, gatewayPaymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return entities.ErrInvalidSignature
	}
	return nil
}
