// Package errors provides structured error handling with error codes for the
// role wire types.
//
// Every failure raised while decoding a Role or RoleRef document is a
// "bad request" fault: a structured Error carrying a short category message
// and the underlying diagnostic text. Callers tell faults apart by code and
// decide how to present them.
//
// # Overview
//
// The errors package provides:
//   - Structured Error type with error codes
//   - Bad request faults with (message, detail)
//   - Error wrapping with context
//   - HTTP status code mapping
//   - Error inspection utilities
//
// # Basic Usage
//
//	import "github.com/tendant/simple-idm-types/pkg/errors"
//
//	// Raise a fault with a diagnostic
//	err := errors.BadRequest(errors.ErrCodeMalformedInput, "Cannot parse Role", parseErr.Error())
//
//	// Raise a fault without one
//	err := errors.BadRequest(errors.ErrCodeMissingRequired, "Expecting Tenant", "")
//
// # Error Codes
//
//   - ErrCodeMalformedInput: the buffer is not valid in its claimed encoding
//   - ErrCodeMissingElement: the expected wrapper element or key is absent
//   - ErrCodeMissingRequired: a required field is absent, empty or null
//   - ErrCodeInvalidInput: generic invalid input, e.g. an unsupported media type
//   - ErrCodeInternal
//
// # Error Inspection
//
//	if errors.IsCode(err, errors.ErrCodeMissingRequired) {
//		// Handle missing field
//	}
//
//	msg := errors.GetMessage(err) // "Expecting Tenant"
//	diag := errors.Detail(err)    // parser diagnostic, if any
//
// # HTTP Status Code Mapping
//
//	func handleError(w http.ResponseWriter, err error) {
//		var structuredErr *errors.Error
//		if errors.As(err, &structuredErr) {
//			http.Error(w, structuredErr.Message, structuredErr.HTTPStatusCode())
//			return
//		}
//		http.Error(w, "Internal server error", 500)
//	}
//
// Error code to HTTP status mapping:
//   - ErrCodeInvalidInput, ErrCodeMalformedInput, ErrCodeMissingElement,
//     ErrCodeMissingRequired → 400 Bad Request
//   - ErrCodeInternal → 500 Internal Server Error
package errors
