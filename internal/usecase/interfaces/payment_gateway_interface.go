package interfaces

import "context"

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The concierge core charges the request's fee snapshot through it when the
// consumer confirms payment; the provider's payment id and status are kept
// for traceability.
type IPaymentGateway interface {
	ChargePayment(ctx context.Context, referenceID string, amount float64, method string) (providerPaymentID string, providerStatus string, err error)
}
