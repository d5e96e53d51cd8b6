package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "sportfields/internal/handler/dto/request"
	resdto "sportfields/internal/handler/dto/response"
	"sportfields/internal/handler/httperr"
	"sportfields/internal/infra/external"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	stripe      *external.StripeClient
	frontendURL string
}

func NewPaymentHandler(stripe *external.StripeClient, frontendURL string) *PaymentHandler {
	return &PaymentHandler{stripe: stripe, frontendURL: frontendURL}
}

// @Summary Create a checkout session returning to the map page
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 500 {object} httperr.Response
// @Router /create-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	h.createSession(c, "/fields-map")
}

// @Summary Create a checkout session returning to the search page
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 500 {object} httperr.Response
// @Router /create-checkout-session-new [post]
func (h *PaymentHandler) CreateCheckoutSessionNew(c *gin.Context) {
	h.createSession(c, "/search-fields")
}

func (h *PaymentHandler) createSession(c *gin.Context, returnPage string) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	session, err := h.stripe.CreateCheckoutSession(
		c.Request.Context(),
		fmt.Sprintf("Field Reservation - %d", req.FieldID),
		req.TotalPrice,
		h.frontendURL+returnPage+"?payment=success",
		h.frontendURL+returnPage+"?payment=cancel",
	)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create checkout session")
		return
	}

	c.JSON(http.StatusOK, resdto.CheckoutResponse{URL: session.URL})
}

type GeoHandler struct {
	geocoder *external.GeocodingClient
}

func NewGeoHandler(geocoder *external.GeocodingClient) *GeoHandler {
	return &GeoHandler{geocoder: geocoder}
}

// @Summary Resolve an address to map coordinates
// @Tags geo
// @Produce json
// @Param address query string true "Street address"
// @Success 200 {object} resdto.CoordinatesResponse
// @Failure 404 {object} httperr.Response
// @Router /get-coordinates [get]
func (h *GeoHandler) GetCoordinates(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errForbidden, "Missing address")
		return
	}

	coords, err := h.geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		if errors.Is(err, external.ErrNoCoordinates) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No coordinates found for this address.")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error fetching coordinates.")
		return
	}

	c.JSON(http.StatusOK, resdto.NewCoordinatesResponse(coords.Lat, coords.Lng))
}
