package services

import (
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/aleembhd/pocket-pals-budget/models"
)

// PaymentRequest is what the SPA submits before handing off to an external
// UPI app. Nothing here talks to a payment network; the link is a plain
// deep-link string for the device to dispatch.
type PaymentRequest struct {
	PayeeAddress string
	PayeeName    string
	Amount       decimal.Decimal
	Note         string
}

// BuildUPILink renders a upi://pay deep link with the standard query
// parameters (pa, pn, am, tn), url-encoded.
func BuildUPILink(req PaymentRequest) (string, error) {
	if req.PayeeAddress == "" {
		return "", models.NewValidationError("payeeAddress", "is required")
	}
	if !req.Amount.IsPositive() {
		return "", models.NewValidationError("amount", "must be greater than zero")
	}

	v := url.Values{}
	v.Set("pa", req.PayeeAddress)
	if req.PayeeName != "" {
		v.Set("pn", req.PayeeName)
	}
	v.Set("am", req.Amount.String())
	if req.Note != "" {
		v.Set("tn", req.Note)
	}
	return "upi://pay?" + v.Encode(), nil
}

// ParseUPILink extracts the payee address and name from a scanned UPI QR
// value. Anything that is not a upi://pay URI with a payee address is
// rejected; the scan flow surfaces that as a retryable notification.
func ParseUPILink(raw string) (payeeAddress, payeeName string, err error) {
	u, parseErr := url.Parse(raw)
	if parseErr != nil || u.Scheme != "upi" || u.Host != "pay" {
		return "", "", models.NewValidationError("qrValue", "is not a UPI payment code")
	}

	q := u.Query()
	payeeAddress = q.Get("pa")
	if payeeAddress == "" {
		return "", "", models.NewValidationError("qrValue", "has no payee address")
	}
	return payeeAddress, q.Get("pn"), nil
}
