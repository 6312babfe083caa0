package receipt

import "errors"

// FailureKind identifies the validation rule a candidate receipt violated.
type FailureKind string

const (
	FailMissingField          FailureKind = "missing_field"
	FailInvalidRetailerFormat FailureKind = "invalid_retailer_format"
	FailInvalidDateFormat     FailureKind = "invalid_date_format"
	FailInvalidTimeFormat     FailureKind = "invalid_time_format"
	FailEmptyItemsArray       FailureKind = "empty_items_array"
	FailInvalidItemFormat     FailureKind = "invalid_item_format"
	FailInvalidItemPrice      FailureKind = "invalid_item_price"
	FailInvalidTotalFormat    FailureKind = "invalid_total_format"
	FailTotalMismatch         FailureKind = "total_mismatch"
)

// ValidationError reports the first rule a candidate receipt violated.
// Validation fails fast, so one candidate yields at most one error.
type ValidationError struct {
	Kind    FailureKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FailureKindOf extracts the failure kind from an error chain.
func FailureKindOf(err error) (FailureKind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return "", false
}
