package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sportfields/internal/pkg/errs"
)

const translateURL = "https://translation.googleapis.com/language/translate/v2"

var ErrTranslateFailed = errs.New("translation request failed")

// TranslateClient renders exercise names and descriptions in Romanian
// for the training plan view.
type TranslateClient struct {
	apiKey string
	client *http.Client
}

func NewTranslateClient(apiKey string) *TranslateClient {
	return &TranslateClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *TranslateClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	form := url.Values{}
	form.Set("q", text)
	form.Set("target", targetLang)
	form.Set("format", "text")
	form.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, translateURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "build translate request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.client.Do(req)
	if err != nil {
		return "", errs.Mark(err, ErrTranslateFailed)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errs.Mark(fmt.Errorf("translate returned %d", res.StatusCode), ErrTranslateFailed)
	}

	var payload struct {
		Data struct {
			Translations []struct {
				TranslatedText string `json:"translatedText"`
			} `json:"translations"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", errs.Mark(err, ErrTranslateFailed)
	}
	if len(payload.Data.Translations) == 0 {
		return "", errs.Mark(fmt.Errorf("empty translation response"), ErrTranslateFailed)
	}

	return payload.Data.Translations[0].TranslatedText, nil
}
