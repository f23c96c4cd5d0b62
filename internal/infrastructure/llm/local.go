// Package llm 提供多后端文本生成适配层
package llm

import (
	"context"
	"fmt"
	"strings"
)

// GenerateOptions 进程内管线的生成选项
type GenerateOptions struct {
	MaxNewTokens int
	Sampling     SamplingParams
	// TopK 采样候选数
	TopK int
	// NoRepeatNGramSize 禁止重复的 n-gram 长度
	NoRepeatNGramSize int
}

// LocalPipeline 进程内因果文本生成管线。
// 实现约束：仅 CPU 执行，单序列采样，生成结果包含回显的输入前缀。
type LocalPipeline interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// PipelineFactory 延迟构建进程内管线；构建失败视为本地后端不可用
type PipelineFactory func(ctx context.Context) (LocalPipeline, error)

// 默认生成选项
const (
	defaultTopK              = 50
	defaultNoRepeatNGramSize = 3
)

// generateLocal 调用进程内管线并去除回显的输入前缀
func generateLocal(ctx context.Context, pipeline LocalPipeline, prompt string, maxNewTokens int, params SamplingParams) (string, error) {
	if pipeline == nil {
		return "", fmt.Errorf("local pipeline not loaded")
	}

	out, err := pipeline.Generate(ctx, prompt, GenerateOptions{
		MaxNewTokens:      maxNewTokens,
		Sampling:          params,
		TopK:              defaultTopK,
		NoRepeatNGramSize: defaultNoRepeatNGramSize,
	})
	if err != nil {
		return "", err
	}

	// 管线回显输入，裁掉前缀只保留新生成部分
	return strings.TrimPrefix(out, prompt), nil
}
