package receipt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	retailerPattern    = regexp.MustCompile(`^[A-Za-z0-9 _\-&]+$`)
	descriptionPattern = regexp.MustCompile(`^[A-Za-z0-9 _\-]+$`)
	amountPattern      = regexp.MustCompile(`^\d+\.\d{2}$`)
)

// requiredFields is the fixed order in which missing fields are reported.
var requiredFields = []string{"retailer", "purchaseDate", "purchaseTime", "items", "total"}

// Validate checks a candidate receipt document and returns the typed Receipt
// on success. Checks run in a fixed order and stop at the first violation so
// error reporting stays deterministic: required fields, retailer format,
// purchase date, purchase time, items, then total. The item price sum
// accumulated while checking items feeds the final total match and is never
// recomputed.
func Validate(doc Document) (*Receipt, error) {
	for _, field := range requiredFields {
		if !doc.Has(field) {
			return nil, &ValidationError{
				Kind:    FailMissingField,
				Field:   field,
				Message: "Missing required field: " + field,
			}
		}
	}

	retailer, ok := doc.String("retailer")
	if !ok || !retailerPattern.MatchString(retailer) {
		return nil, &ValidationError{
			Kind:    FailInvalidRetailerFormat,
			Field:   "retailer",
			Message: "Invalid retailer name format",
		}
	}

	purchaseDate, err := parseField(doc, "purchaseDate", dateLayout)
	if err != nil {
		return nil, &ValidationError{
			Kind:    FailInvalidDateFormat,
			Field:   "purchaseDate",
			Message: "Invalid purchase date format",
		}
	}

	purchaseTime, err := parseField(doc, "purchaseTime", timeLayout)
	if err != nil {
		return nil, &ValidationError{
			Kind:    FailInvalidTimeFormat,
			Field:   "purchaseTime",
			Message: "Invalid purchase time format",
		}
	}

	items, sumCents, vErr := validateItems(doc)
	if vErr != nil {
		return nil, vErr
	}

	totalCents, vErr := validateTotal(doc, sumCents)
	if vErr != nil {
		return nil, vErr
	}

	return &Receipt{
		Retailer:     retailer,
		PurchaseDate: purchaseDate,
		PurchaseTime: purchaseTime,
		Items:        items,
		TotalCents:   totalCents,
	}, nil
}

// validateItems checks the items array and returns the typed items together
// with their price sum in cents, so the total check never recomputes it.
func validateItems(doc Document) ([]Item, int64, *ValidationError) {
	raw, ok := doc.Array("items")
	if !ok || len(raw) == 0 {
		return nil, 0, &ValidationError{
			Kind:    FailEmptyItemsArray,
			Field:   "items",
			Message: "Items must be a non-empty array",
		}
	}

	items := make([]Item, 0, len(raw))
	var sumCents int64
	for _, elem := range raw {
		item, ok := AsDocument(elem)
		if !ok {
			return nil, 0, itemFormatError("Each item must be an object")
		}
		if !item.Has("shortDescription") || !item.Has("price") {
			return nil, 0, itemFormatError("Items must have shortDescription and price")
		}
		desc, ok := item.String("shortDescription")
		if !ok || !descriptionPattern.MatchString(desc) {
			return nil, 0, itemFormatError("Invalid item description format")
		}
		priceStr, ok := item.String("price")
		if !ok || !amountPattern.MatchString(priceStr) {
			return nil, 0, itemFormatError("Invalid item price format")
		}
		cents, err := parseAmount(priceStr)
		if err != nil {
			return nil, 0, &ValidationError{
				Kind:    FailInvalidItemPrice,
				Field:   "price",
				Message: "Invalid price value for item: " + desc,
			}
		}
		sumCents += cents
		items = append(items, Item{ShortDescription: desc, PriceCents: cents})
	}
	return items, sumCents, nil
}

// validateTotal checks the declared total's format and value and matches it
// against the item sum. Amounts carry exactly two decimals, so any real
// discrepancy is at least a whole cent and exact comparison is the
// deterministic form of the 0.01 tolerance.
func validateTotal(doc Document, sumCents int64) (int64, *ValidationError) {
	totalStr, ok := doc.String("total")
	if !ok || !amountPattern.MatchString(totalStr) {
		return 0, &ValidationError{
			Kind:    FailInvalidTotalFormat,
			Field:   "total",
			Message: "Invalid total format",
		}
	}
	totalCents, err := parseAmount(totalStr)
	if err != nil {
		return 0, &ValidationError{
			Kind:    FailInvalidTotalFormat,
			Field:   "total",
			Message: "Invalid total value",
		}
	}
	if totalCents != sumCents {
		return 0, &ValidationError{
			Kind:  FailTotalMismatch,
			Field: "total",
			Message: fmt.Sprintf("Receipt total (%s) does not match sum of items (%s)",
				totalStr, formatCents(sumCents)),
		}
	}
	return totalCents, nil
}

func parseField(doc Document, field, layout string) (time.Time, error) {
	s, ok := doc.String(field)
	if !ok {
		return time.Time{}, fmt.Errorf("%s is not a string", field)
	}
	return time.Parse(layout, s)
}

func itemFormatError(message string) *ValidationError {
	return &ValidationError{Kind: FailInvalidItemFormat, Field: "items", Message: message}
}

// parseAmount converts a `^\d+\.\d{2}$` string into integer cents. The
// pattern rules out signs, so amounts are always non-negative; the only
// remaining failure is overflow.
func parseAmount(s string) (int64, error) {
	dollars, err := strconv.ParseInt(s[:len(s)-3], 10, 64)
	if err != nil {
		return 0, err
	}
	cents, err := strconv.ParseInt(s[len(s)-2:], 10, 64)
	if err != nil {
		return 0, err
	}
	return dollars*100 + cents, nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
