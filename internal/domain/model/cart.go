package model

// CartLineItem is a single cart position. Quantity never drops below one via
// quantity controls; removal is a separate explicit action.
type CartLineItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	Category  string
	Color     string
	Size      string
	Image     string
}

// PricingResult is the derived cost breakdown for a cart snapshot.
type PricingResult struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Discount float64
	Total    float64
}

// CheckoutResult reports the priced order and the loyalty effects of placing it.
type CheckoutResult struct {
	Pricing      PricingResult
	PromoApplied bool
	Reference    string
	PointsEarned int64
	User         *LoyaltyUser
}

// ClampQuantity enforces the decrement floor of one item.
func ClampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}
