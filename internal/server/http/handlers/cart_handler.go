package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/loyaltyhub/internal/domain/errors"
	"github.com/polkiloo/loyaltyhub/internal/server/http/dto"
)

// CartHandler manages cart pricing and checkout endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Price handles POST /api/cart/price.
func (h *CartHandler) Price(c *gin.Context) {
	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	pricing, applied, err := h.facade.PriceCart(c.Request.Context(), dto.ToLineItems(req.Items), req.PromoCode, req.Discount)
	rejected := false
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidPromoCode):
			// A bad code does not spoil the breakdown; surface it in the body.
			rejected = true
		case errors.Is(err, domainErrors.ErrPromoLookupFailed):
			c.Status(http.StatusBadGateway)
			return
		default:
			c.Status(http.StatusInternalServerError)
			return
		}
	}

	c.JSON(http.StatusOK, dto.ToPricingResponse(pricing, applied, rejected))
}

// Checkout handles POST /api/cart/checkout.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), dto.ToLineItems(req.Items), req.PromoCode, req.Discount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrUserNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrPromoLookupFailed):
			c.Status(http.StatusBadGateway)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		Pricing:      dto.ToPricingResponse(result.Pricing, result.PromoApplied, req.PromoCode != "" && !result.PromoApplied),
		Reference:    result.Reference,
		PointsEarned: result.PointsEarned,
		User:         dto.ToUserResponse(result.User),
	})
}
