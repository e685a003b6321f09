// Package transport defines the request/response shapes of the external
// Discount Service.
package transport

// ValidateRequest asks the discount service to check a code against the
// current subtotal.
type ValidateRequest struct {
	Code     string `json:"code"`
	Subtotal int64  `json:"subtotal"`
	UserID   string `json:"userId,omitempty"`
}

// ValidateResponse is the discount service's verdict. DiscountAmount and
// FinalAmount are only meaningful when IsValid is true.
type ValidateResponse struct {
	IsValid        bool   `json:"isValid"`
	DiscountAmount int64  `json:"discountAmount"`
	FinalAmount    int64  `json:"finalAmount"`
	Message        string `json:"message"`
}
