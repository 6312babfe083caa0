package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	require.NoError(t, err)
	return d
}

func mustClock(t *testing.T, s string) time.Time {
	t.Helper()
	c, err := time.Parse(timeLayout, s)
	require.NoError(t, err)
	return c
}

func TestRetailerPoints(t *testing.T) {
	tests := []struct {
		retailer string
		want     int
	}{
		{"Target", 6},
		{"M&M Corner Market", 14},
		{"7-11", 3},
		{"A", 1},
		{"", 0},
		{"Best Buy!", 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retailerPoints(tt.retailer), "retailer %q", tt.retailer)
	}
}

func TestTotalPoints(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  int
	}{
		{"whole dollar is also a quarter multiple", 900, 75},
		{"quarter multiple only", 1025, 25},
		{"neither", 1099, 0},
		{"zero total", 0, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalPoints(tt.cents))
		})
	}
}

func TestItemCountPoints(t *testing.T) {
	wants := map[int]int{0: 0, 1: 0, 2: 5, 3: 5, 4: 10, 5: 10}
	for count, want := range wants {
		assert.Equal(t, want, itemCountPoints(count), "%d items", count)
	}
}

func TestDescriptionPoints(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want int
	}{
		{"length 3", Item{ShortDescription: "ABC", PriceCents: 1000}, 2},
		{"length 6", Item{ShortDescription: "ABCDEF", PriceCents: 1000}, 2},
		{"length 2 scores nothing", Item{ShortDescription: "AB", PriceCents: 1000}, 0},
		{"rounds the scaled price up", Item{ShortDescription: "ABCDEF", PriceCents: 1225}, 3},
		{"length counted after trimming", Item{ShortDescription: "  Emils Cheese Pizza  ", PriceCents: 1225}, 3},
		{"already whole after scaling", Item{ShortDescription: "ABC", PriceCents: 500}, 1},
		{"free item scores nothing extra", Item{ShortDescription: "ABC", PriceCents: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, descriptionPoints(tt.item))
		})
	}
}

func TestPurchaseDayPoints(t *testing.T) {
	assert.Equal(t, 6, purchaseDayPoints(mustDate(t, "2024-03-21")))
	assert.Equal(t, 0, purchaseDayPoints(mustDate(t, "2024-03-20")))
}

func TestPurchaseTimePoints(t *testing.T) {
	tests := []struct {
		clock string
		want  int
	}{
		{"14:00", 10},
		{"15:59", 10},
		{"13:59", 0},
		{"16:00", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, purchaseTimePoints(mustClock(t, tt.clock)), "time %s", tt.clock)
	}
}

func TestPoints(t *testing.T) {
	t.Run("sums all rules for the Target receipt", func(t *testing.T) {
		rec, err := Validate(validDoc())
		require.NoError(t, err)

		// 6 retailer + 5 item pair + 3 pizza description + 6 odd day.
		assert.Equal(t, 20, Points(rec))
	})

	t.Run("afternoon purchase on an even day", func(t *testing.T) {
		rec := &Receipt{
			Retailer:     "M&M Corner Market",
			PurchaseDate: mustDate(t, "2022-03-20"),
			PurchaseTime: mustClock(t, "14:33"),
			Items: []Item{
				{ShortDescription: "Gatorade", PriceCents: 225},
				{ShortDescription: "Gatorade", PriceCents: 225},
				{ShortDescription: "Gatorade", PriceCents: 225},
				{ShortDescription: "Gatorade", PriceCents: 225},
			},
			TotalCents: 900,
		}

		// 14 retailer + 75 total + 10 pairs + 10 afternoon.
		assert.Equal(t, 109, Points(rec))
	})

	t.Run("scoring is idempotent", func(t *testing.T) {
		rec, err := Validate(validDoc())
		require.NoError(t, err)

		first := Points(rec)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Points(rec))
		}
	})

	t.Run("never negative for validated receipts", func(t *testing.T) {
		docs := []Document{validDoc()}

		minimal := validDoc()
		minimal["retailer"] = "_"
		minimal["items"] = []any{map[string]any{"shortDescription": "AB", "price": "0.99"}}
		minimal["total"] = "0.99"
		minimal["purchaseDate"] = "2022-01-02"
		docs = append(docs, minimal)

		for _, doc := range docs {
			rec, err := Validate(doc)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, Points(rec), 0)
		}
	})
}
