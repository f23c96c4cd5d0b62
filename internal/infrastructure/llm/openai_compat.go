// Package llm 提供多后端文本生成适配层
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CompletionClient OpenAI completions 兼容客户端，
// 覆盖默认远程服务、LM Studio 与 ChatGPT 三种后端。
type CompletionClient struct {
	httpClient *http.Client
}

// NewCompletionClient 创建补全客户端
func NewCompletionClient(timeout time.Duration) *CompletionClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CompletionClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Model             string   `json:"model,omitempty"`
	Prompt            string   `json:"prompt"`
	MaxTokens         int      `json:"max_tokens"`
	Temperature       float64  `json:"temperature"`
	TopP              float64  `json:"top_p"`
	RepetitionPenalty *float64 `json:"repetition_penalty,omitempty"`
	FrequencyPenalty  *float64 `json:"frequency_penalty,omitempty"`
	Stop              []string `json:"stop"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

// Complete 调用 {base}/v1/completions 并返回 choices[0].text
func (c *CompletionClient) Complete(ctx context.Context, baseURL, token, model, prompt string, maxTokens int, params SamplingParams, chatGPTCompat bool) (string, error) {
	req := completionRequest{
		Model:       model,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: params.Temperature,
		TopP:        params.TopP,
		Stop:        []string{},
	}

	if chatGPTCompat {
		// OpenAI 端不接受 repetition_penalty，按其频率惩罚刻度换算
		fp := params.RepetitionPenalty - 1.0
		req.FrequencyPenalty = &fp
	} else {
		rp := params.RepetitionPenalty
		req.RepetitionPenalty = &rp
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := strings.TrimRight(baseURL, "/") + "/v1/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, 256))
		return "", fmt.Errorf("completion request failed: status=%d body=%s", httpResp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var resp completionResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	return resp.Choices[0].Text, nil
}

// Health 探测远程补全服务存活状态
func (c *CompletionClient) Health(ctx context.Context, baseURL string) error {
	url := strings.TrimRight(baseURL, "/") + "/health"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("health probe failed: status=%d", httpResp.StatusCode)
	}
	return nil
}
