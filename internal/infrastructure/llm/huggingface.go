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

// HuggingFaceClient 托管推理文本生成客户端
type HuggingFaceClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewHuggingFaceClient 创建托管推理客户端
func NewHuggingFaceClient(baseURL, model string, timeout time.Duration) *HuggingFaceClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HuggingFaceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type hfParameters struct {
	MaxNewTokens      int     `json:"max_new_tokens"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
	ReturnFullText    bool    `json:"return_full_text"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// Generate 调用托管推理端点生成文本
func (c *HuggingFaceClient) Generate(ctx context.Context, token, prompt string, maxNewTokens int, params SamplingParams) (string, error) {
	req := hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens:      maxNewTokens,
			Temperature:       params.Temperature,
			TopP:              params.TopP,
			RepetitionPenalty: params.RepetitionPenalty,
			ReturnFullText:    false,
		},
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal inference request: %w", err)
	}

	url := c.baseURL + "/models/" + c.model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create inference request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, 256))
		return "", fmt.Errorf("inference request failed: status=%d body=%s", httpResp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var generations []hfGeneration
	if err := json.NewDecoder(httpResp.Body).Decode(&generations); err != nil {
		return "", fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(generations) == 0 {
		return "", fmt.Errorf("inference response is empty")
	}
	return generations[0].GeneratedText, nil
}

// Model 返回默认模型标识
func (c *HuggingFaceClient) Model() string {
	return c.model
}
