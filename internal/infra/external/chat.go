package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"sportfields/internal/pkg/errs"
)

const chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

var ErrChatFailed = errs.New("chat completion failed")

type ChatClient struct {
	apiKey string
	model  string
	client *http.Client
}

// NewChatClient builds the completion client. No client-level timeout:
// the caller bounds each request through its context, and the plan
// generation deadline lives there.
func NewChatClient(apiKey, model string) *ChatClient {
	return &ChatClient{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

func (c *ChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: 700,
	})
	if err != nil {
		return "", errs.Wrap(err, "marshal chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatCompletionsURL, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)
	if err != nil {
		return "", errs.Mark(err, ErrChatFailed)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errs.Mark(fmt.Errorf("openai returned %d", res.StatusCode), ErrChatFailed)
	}

	var payload struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", errs.Mark(err, ErrChatFailed)
	}
	if len(payload.Choices) == 0 {
		return "", errs.Mark(fmt.Errorf("empty completion response"), ErrChatFailed)
	}
	return payload.Choices[0].Message.Content, nil
}
