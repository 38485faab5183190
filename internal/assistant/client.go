package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"RamadhanLantern/config"
)

// ReplyClient 把一段提示词发给上游模型并取回回复文本
type ReplyClient interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// HTTPClient 调用文本补全接口的 ReplyClient 实现。
// 接口形如 GET {base}?text={prompt}，返回 {"status": bool, "result": string}。
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		baseURL: config.Cfg.AssistantAPIBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Cfg.AssistantTimeoutSecs) * time.Second,
		},
	}
}

type replyResponse struct {
	Status bool   `json:"status"`
	Result string `json:"result"`
}

func (c *HTTPClient) Reply(ctx context.Context, prompt string) (string, error) {
	query := url.Values{}
	query.Set("text", prompt)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create assistant request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read assistant response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant API returned status %d", resp.StatusCode)
	}

	var parsed replyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse assistant response: %w", err)
	}
	if !parsed.Status || parsed.Result == "" {
		return "", fmt.Errorf("assistant API returned an empty result")
	}

	return parsed.Result, nil
}
