package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"sportfields/internal/pkg/errs"
)

const youtubeSearchURL = "https://www.googleapis.com/youtube/v3/search"

var ErrVideoSearchFailed = errs.New("video search failed")

// Per-sport channel whitelist: tutorials are only pulled from vetted
// coaching channels, tried in order until one has a match.
var sportChannels = map[string][]string{
	"fotbal":  {"UC5SQGzkWyQSW_fe-URgq7xw", "UC0Ik25PHaiHCbfGrzu-lBFQ", "UC4bvZoXoM-9_ITecvZ2U0BQ"},
	"baschet": {"UCqjq2Zq6QUwpDR45Ns89YDw", "UC3jwvC1HTXpdvrlHFMFTdYg"},
	"tenis":   {"UCvQvcthQRTWwkkRgTGrtpsg", "UCTK9oKMGU0XIQpLJYDs45fw"},
}

type YouTubeClient struct {
	apiKey string
	client *http.Client
}

func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// FindTutorial returns the watch URL of the most relevant tutorial for
// an exercise, restricted to the sport's whitelisted channels. An empty
// string means no channel had a match; that is not an error.
func (c *YouTubeClient) FindTutorial(ctx context.Context, sport, exercise, sportEnglish string) (string, error) {
	channels, ok := sportChannels[sport]
	if !ok {
		return "", nil
	}

	query := fmt.Sprintf("Tutorial %s for %s", exercise, sportEnglish)

	for _, channelID := range channels {
		videoID, err := c.searchChannel(ctx, channelID, query)
		if err != nil {
			return "", err
		}
		if videoID != "" {
			return "https://www.youtube.com/watch?v=" + videoID, nil
		}
	}
	return "", nil
}

func (c *YouTubeClient) searchChannel(ctx context.Context, channelID, query string) (string, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", "1")
	params.Set("order", "relevance")
	params.Set("publishedAfter", "2020-01-01T00:00:00Z")
	params.Set("channelId", channelID)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, youtubeSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", errs.Wrap(err, "build video search request")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return "", errs.Mark(err, ErrVideoSearchFailed)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errs.Mark(fmt.Errorf("youtube returned %d", res.StatusCode), ErrVideoSearchFailed)
	}

	var payload struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", errs.Mark(err, ErrVideoSearchFailed)
	}
	if len(payload.Items) == 0 {
		return "", nil
	}
	return payload.Items[0].ID.VideoID, nil
}
