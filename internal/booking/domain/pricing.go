package domain

// LineItem is one row of a price breakdown. Night is set only for
// accommodation breakdowns and carries the night's date as yyyy-mm-dd.
type LineItem struct {
	Label     string `json:"label"`
	Night     string `json:"night,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Amount    int64  `json:"amount"`
}

// PriceBreakdown is the itemized price computation prior to discount.
// Subtotal always equals the sum of the line item amounts.
type PriceBreakdown struct {
	Subtotal  int64      `json:"subtotal"`
	LineItems []LineItem `json:"lineItems"`
}

// DiscountApplication is the outcome of validating a promotional code
// against a subtotal. When IsValid is false, DiscountAmount is zero and
// FinalAmount equals the subtotal the code was checked against.
type DiscountApplication struct {
	Code           string `json:"code"`
	IsValid        bool   `json:"isValid"`
	DiscountAmount int64  `json:"discountAmount"`
	FinalAmount    int64  `json:"finalAmount"`
	Message        string `json:"message,omitempty"`
}
