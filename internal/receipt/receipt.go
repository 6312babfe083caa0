// Package receipt holds the receipt domain model and the two rule engines
// that operate on it: structural validation of candidate receipts and points
// scoring of accepted ones. Both engines are pure functions; the store owns
// the canonical copy of every accepted receipt.
package receipt

import "time"

// Item is a single line item on an accepted receipt. Amounts are kept in
// integer cents, parsed from the mandatory two-decimal wire format, so all
// scoring arithmetic is exact.
type Item struct {
	ShortDescription string
	PriceCents       int64
}

// Receipt is a purchase record that passed validation. It is never mutated
// after acceptance; the scorer only ever reads it.
type Receipt struct {
	Retailer     string
	PurchaseDate time.Time
	PurchaseTime time.Time
	Items        []Item
	TotalCents   int64
}
