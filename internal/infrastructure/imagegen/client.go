// Package imagegen 提供文生图适配层
package imagegen

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

// 固定出图参数
const (
	imageWidth  = 512
	imageHeight = 512

	negativePrompt = "blurry, low quality, distorted, deformed, text, watermark"
)

// TextToImageClient 托管推理文生图客户端
type TextToImageClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewTextToImageClient 创建文生图客户端
func NewTextToImageClient(endpoint string, timeout time.Duration) *TextToImageClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &TextToImageClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type textToImageRequest struct {
	Inputs     string                `json:"inputs"`
	Parameters textToImageParameters `json:"parameters"`
}

type textToImageParameters struct {
	NegativePrompt string `json:"negative_prompt"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// Generate 调用文生图端点，返回图片二进制
func (c *TextToImageClient) Generate(ctx context.Context, token, prompt string) ([]byte, error) {
	req := textToImageRequest{
		Inputs: prompt,
		Parameters: textToImageParameters{
			NegativePrompt: negativePrompt,
			Width:          imageWidth,
			Height:         imageHeight,
		},
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal image request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create image request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, 256))
		return nil, fmt.Errorf("image request failed: status=%d body=%s", httpResp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image response: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image response is empty")
	}
	return data, nil
}
