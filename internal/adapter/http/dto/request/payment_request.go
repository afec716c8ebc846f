package request

import "encoding/json"

// PaymentCreateRequest is the payload for the "charge an invoice" route.
//
// `gateway_payload` is forwarded as-is (raw JSON) to support varying
// Mercado Pago schemas. A bare body without the envelope is also accepted
// and treated as the payload itself.

type PaymentCreateRequest struct {
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}
