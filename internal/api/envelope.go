package api

import (
	"strconv"

	"github.com/danielgtaylor/huma/v2"
)

// EnvelopeVersion is the wire version stamped on every response body.
// Bump it only for breaking envelope changes; clients check it before
// parsing the rest.
const EnvelopeVersion = 1

// APIEnvelope is the standard response wrapper. Success responses put
// payload in Data; simple failures carry a human-readable Error string.
type APIEnvelope struct { //nolint:revive // API prefix is intentional for clarity
	Version int    `json:"v" doc:"Envelope format version"`
	Success bool   `json:"success" doc:"Whether the request succeeded"`
	Data    any    `json:"data,omitempty" doc:"Response payload"`
	Error   string `json:"error,omitempty" doc:"Error message when success is false"`
}

// APIErrorEnvelope wraps structured errors that carry a machine-readable
// code and optional details alongside the message.
type APIErrorEnvelope struct { //nolint:revive // API prefix is intentional for clarity
	Version int    `json:"v" doc:"Envelope format version"`
	Success bool   `json:"success" doc:"Always false"`
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// EnvelopeTransformer wraps every huma response body in the versioned
// envelope. Registered via humaConfig.Transformers so handlers return
// bare payloads and never see the wrapper.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	code, err := strconv.Atoi(status)
	if err != nil {
		code = 0
	}

	if code >= 400 {
		if apiErr, ok := v.(*APIError); ok {
			if apiErr.Code != "" {
				return APIErrorEnvelope{
					Version: EnvelopeVersion,
					Success: false,
					Code:    apiErr.Code,
					Message: apiErr.Message,
					Details: apiErr.Details,
				}, nil
			}
			return APIEnvelope{
				Version: EnvelopeVersion,
				Success: false,
				Error:   apiErr.Message,
			}, nil
		}
		if e, ok := v.(error); ok {
			return APIEnvelope{
				Version: EnvelopeVersion,
				Success: false,
				Error:   e.Error(),
			}, nil
		}
	}

	return APIEnvelope{
		Version: EnvelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}
