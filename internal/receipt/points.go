package receipt

import (
	"strings"
	"time"
	"unicode"
)

// Points computes the score of a validated receipt. Seven independent rules
// are summed with no interaction between them; the same receipt always
// yields the same score.
func Points(r *Receipt) int {
	points := retailerPoints(r.Retailer)
	points += totalPoints(r.TotalCents)
	points += itemCountPoints(len(r.Items))
	for _, item := range r.Items {
		points += descriptionPoints(item)
	}
	points += purchaseDayPoints(r.PurchaseDate)
	points += purchaseTimePoints(r.PurchaseTime)
	return points
}

// retailerPoints awards one point per alphanumeric character in the retailer
// name; spaces and punctuation do not count.
func retailerPoints(retailer string) int {
	points := 0
	for _, c := range retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			points++
		}
	}
	return points
}

// totalPoints awards 50 points for a whole-dollar total plus 25 when the
// total is a multiple of 0.25.
func totalPoints(cents int64) int {
	points := 0
	if cents%100 == 0 {
		points += 50
	}
	if cents%25 == 0 {
		points += 25
	}
	return points
}

// itemCountPoints awards 5 points for every two items.
func itemCountPoints(count int) int {
	return count / 2 * 5
}

// descriptionPoints awards trunc(price*0.2 + 0.99) when the trimmed
// description length is a multiple of 3. The formula is a nonstandard
// round-up, deliberately not a true ceiling; (cents+495)/500 is its exact
// integer form for two-decimal prices.
func descriptionPoints(item Item) int {
	if len(strings.TrimSpace(item.ShortDescription))%3 != 0 {
		return 0
	}
	return int((item.PriceCents + 495) / 500)
}

// purchaseDayPoints awards 6 points when the day of the month is odd.
func purchaseDayPoints(date time.Time) int {
	if date.Day()%2 == 1 {
		return 6
	}
	return 0
}

// purchaseTimePoints awards 10 points for purchases from 14:00 up to but not
// including 16:00.
func purchaseTimePoints(t time.Time) int {
	if hour := t.Hour(); hour >= 14 && hour < 16 {
		return 10
	}
	return 0
}
