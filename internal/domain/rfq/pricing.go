package rfq

import (
	"github.com/shopspring/decimal"
)

// Pricing aggregation over RFQ items and their supplier quote columns.
// All functions are pure and apply no rounding; rounding to currency
// precision happens only at presentation and export time.
//
// An item's subtotal sums EVERY supplier column, not a single chosen
// supplier. An item with several populated columns is therefore priced
// as if all of them were fulfilled. The columns act as independent
// quote columns aggregated for reporting, not as mutually exclusive
// sourcing options.

// DisplayedPrice returns the price shown for a quote column:
// base price plus markup. The markup is decomposed only for profit
// reporting, never hidden from the total.
func DisplayedPrice(q SupplierQuote) decimal.Decimal {
	return q.BasePrice.Add(q.Markup)
}

// LineTotal returns the displayed price of one quote column multiplied
// by the item quantity.
func LineTotal(item Item, q SupplierQuote) decimal.Decimal {
	return DisplayedPrice(q).Mul(item.Quantity)
}

// LineProfit returns the markup of one quote column multiplied by the
// item quantity.
func LineProfit(item Item, q SupplierQuote) decimal.Decimal {
	return q.Markup.Mul(item.Quantity)
}

// ItemSubtotal returns the sum of LineTotal across all quote columns
// of the item. Empty columns contribute zero.
func ItemSubtotal(item Item) decimal.Decimal {
	total := decimal.Zero
	for _, q := range item.Quotes {
		total = total.Add(LineTotal(item, q))
	}
	return total
}

// ItemProfit returns the sum of LineProfit across all quote columns
// of the item.
func ItemProfit(item Item) decimal.Decimal {
	total := decimal.Zero
	for _, q := range item.Quotes {
		total = total.Add(LineProfit(item, q))
	}
	return total
}

// Subtotal returns the sum of ItemSubtotal across all items
func Subtotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ItemSubtotal(item))
	}
	return total
}

// TotalProfit returns the sum of ItemProfit across all items
func TotalProfit(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ItemProfit(item))
	}
	return total
}

// GrandTotal returns subtotal plus delivery fee plus taxes
func GrandTotal(subtotal, deliveryFee, taxes decimal.Decimal) decimal.Decimal {
	return subtotal.Add(deliveryFee).Add(taxes)
}
