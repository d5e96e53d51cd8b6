package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sportfields/internal/pkg/errs"
)

const stripeCheckoutURL = "https://api.stripe.com/v1/checkout/sessions"

var ErrCheckoutFailed = errs.New("checkout session creation failed")

// StripeClient creates hosted checkout sessions. Amounts are RON; the
// API wants the minor unit, so lei are multiplied by 100 into bani.
type StripeClient struct {
	secretKey string
	client    *http.Client
}

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		secretKey: secretKey,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, productName string, amountRON float64, successURL, cancelURL string) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", "ron")
	form.Set("line_items[0][price_data][product_data][name]", productName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(int64(amountRON*100), 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, stripeCheckoutURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Wrap(err, "build checkout request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.secretKey, "")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errs.Mark(fmt.Errorf("stripe returned %d", res.StatusCode), ErrCheckoutFailed)
	}

	var session CheckoutSession
	if err := json.NewDecoder(res.Body).Decode(&session); err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}
	return &session, nil
}
