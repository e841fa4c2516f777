package dto

import "github.com/polkiloo/loyaltyhub/internal/domain/model"

// CartItem is one cart position as sent by the storefront.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Category  string  `json:"category,omitempty"`
	Color     string  `json:"color,omitempty"`
	Size      string  `json:"size,omitempty"`
	Image     string  `json:"image,omitempty"`
}

// PriceRequest asks for a cost breakdown of the current cart. Discount is the
// already-applied discount carried between requests; PromoCode, when set,
// replaces it on success.
type PriceRequest struct {
	Items     []CartItem `json:"items"`
	PromoCode string     `json:"promo_code,omitempty"`
	Discount  float64    `json:"discount,omitempty"`
}

// PricingResponse is the derived cost breakdown. PromoRejected signals the
// submitted code was not honored while the order itself stays priceable.
type PricingResponse struct {
	Subtotal      float64 `json:"subtotal"`
	Shipping      float64 `json:"shipping"`
	Tax           float64 `json:"tax"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	PromoApplied  bool    `json:"promo_applied"`
	PromoRejected bool    `json:"promo_rejected,omitempty"`
}

// CheckoutRequest places the order held in the cart.
type CheckoutRequest struct {
	Items     []CartItem `json:"items"`
	PromoCode string     `json:"promo_code,omitempty"`
	Discount  float64    `json:"discount,omitempty"`
}

// CheckoutResponse reports the placed order and its loyalty effects.
type CheckoutResponse struct {
	Pricing      PricingResponse `json:"pricing"`
	Reference    string          `json:"reference"`
	PointsEarned int64           `json:"points_earned"`
	User         UserResponse    `json:"user"`
}

// ToLineItems converts request cart positions to domain line items.
func ToLineItems(items []CartItem) []model.CartLineItem {
	result := make([]model.CartLineItem, 0, len(items))
	for _, item := range items {
		result = append(result, model.CartLineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Category:  item.Category,
			Color:     item.Color,
			Size:      item.Size,
			Image:     item.Image,
		})
	}
	return result
}

// ToPricingResponse maps a domain breakdown.
func ToPricingResponse(pricing model.PricingResult, applied, rejected bool) PricingResponse {
	return PricingResponse{
		Subtotal:      pricing.Subtotal,
		Shipping:      pricing.Shipping,
		Tax:           pricing.Tax,
		Discount:      pricing.Discount,
		Total:         pricing.Total,
		PromoApplied:  applied,
		PromoRejected: rejected,
	}
}
