// Package llm 提供多后端文本生成适配层
package llm

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gameforge-api/pkg/logger"
	"gameforge-api/pkg/metrics"
)

var tracer = otel.Tracer("llm")

// GenerationRequest 单字段生成请求
type GenerationRequest struct {
	Prompt       string
	MaxNewTokens int
	Patience     int
}

// DegradedReason 降级原因
type DegradedReason string

const (
	// ReasonNoProvider 无可用后端（缺少凭据、模型未加载或端点不可达）
	ReasonNoProvider DegradedReason = "provider_unavailable"
	// ReasonProviderError 传输或后端错误
	ReasonProviderError DegradedReason = "provider_error"
	// ReasonInsufficientOutput 清洗后输出为空或过短，且重试已耗尽
	ReasonInsufficientOutput DegradedReason = "insufficient_output"
)

// Result 生成结果。降级不是错误：调用方按 Degraded 分支处理，
// 需要兼容旧行为时用 Annotated 渲染内联标记串。
type Result struct {
	Text     string
	Degraded bool
	Reason   DegradedReason
	Detail   string
}

// Annotated 渲染带内联标记的降级内容（提示词 + 标记）
func (r Result) Annotated() string {
	if !r.Degraded {
		return r.Text
	}
	if r.Reason == ReasonProviderError {
		return fmt.Sprintf("%s [generation error: %s]", r.Text, r.Detail)
	}
	return r.Text + " [random mode]"
}

// 清洗后短于该长度视为输出不足
const minUsableLength = 5

// 重试上限：首次 + 一次升档重试
const maxAttempts = 2

// Generator 文本生成调度器：按后端类型分发、注入采样参数、
// 清洗输出并在输出不足时以升高一档的耐心重试一次。
type Generator struct {
	completion   *CompletionClient
	huggingFace  *HuggingFaceClient
	pool         *ProviderHandlePool
	chatGPTModel string
}

// NewGenerator 创建文本生成调度器
func NewGenerator(completion *CompletionClient, huggingFace *HuggingFaceClient, pool *ProviderHandlePool, chatGPTModel string) *Generator {
	return &Generator{
		completion:   completion,
		huggingFace:  huggingFace,
		pool:         pool,
		chatGPTModel: chatGPTModel,
	}
}

// Generate 执行一次生成。所有后端错误都被降级吸收，永不返回 error。
func (g *Generator) Generate(ctx context.Context, req GenerationRequest, provider ResolvedProvider) Result {
	ctx, span := tracer.Start(ctx, "llm.Generate",
		trace.WithAttributes(
			attribute.String("provider", string(provider.Kind)),
			attribute.Int("patience", req.Patience),
		))
	defer span.End()

	log := logger.FromContext(ctx).With("provider", string(provider.Kind))

	if reason, ok := g.checkUsable(ctx, provider); !ok {
		log.Debug("text generation provider unusable", "detail", reason)
		metrics.TextGenerationTotal.WithLabelValues(string(provider.Kind), "unavailable").Inc()
		return Result{Text: req.Prompt, Degraded: true, Reason: ReasonNoProvider, Detail: reason}
	}

	patience := ClampPatience(req.Patience)
	start := time.Now()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			patience = ClampPatience(patience + 1)
			metrics.TextGenerationRetries.WithLabelValues(string(provider.Kind)).Inc()
			log.Debug("retrying generation with escalated patience", "patience", patience)
		}

		// 追加随机去重后缀，避免后端对相同提示词的缓存或重复；清洗阶段会完整移除
		prompt := fmt.Sprintf("%s #%d", req.Prompt, rand.Intn(10000)+1)

		raw, err := g.dispatch(ctx, provider, prompt, req.MaxNewTokens, ParamsForPatience(patience))
		if err != nil {
			span.RecordError(err)
			log.Warn("text generation failed", "error", err, "attempt", attempt+1)
			metrics.TextGenerationTotal.WithLabelValues(string(provider.Kind), "error").Inc()
			return Result{
				Text:     req.Prompt,
				Degraded: true,
				Reason:   ReasonProviderError,
				Detail:   fmt.Sprintf("%s: %s", provider.Kind, truncateError(err)),
			}
		}

		clean := Sanitize(raw)
		if len([]rune(clean)) >= minUsableLength {
			metrics.TextGenerationTotal.WithLabelValues(string(provider.Kind), "success").Inc()
			metrics.TextGenerationDuration.WithLabelValues(string(provider.Kind)).Observe(time.Since(start).Seconds())
			return Result{Text: clean}
		}
	}

	log.Warn("text generation output insufficient after retry")
	metrics.TextGenerationTotal.WithLabelValues(string(provider.Kind), "insufficient").Inc()
	return Result{Text: req.Prompt, Degraded: true, Reason: ReasonInsufficientOutput}
}

// Usable 判断后端当前是否可用，供调用方决定是否整体走模板路径
func (g *Generator) Usable(ctx context.Context, provider ResolvedProvider) bool {
	_, ok := g.checkUsable(ctx, provider)
	return ok
}

// checkUsable 判断后端当前是否可用；不可用属于静默降级，不是错误
func (g *Generator) checkUsable(ctx context.Context, provider ResolvedProvider) (string, bool) {
	switch provider.Kind {
	case KindLocal:
		if _, ok := g.pool.Local(ctx); !ok {
			return "local pipeline not loaded", false
		}
	case KindRemoteDefault:
		if provider.EndpointURL == "" {
			return "remote endpoint not configured", false
		}
		if !g.pool.RemoteReachable(ctx, provider.EndpointURL) {
			return "remote endpoint unreachable", false
		}
	case KindLMStudio:
		if provider.EndpointURL == "" {
			return "lmstudio url not configured", false
		}
	case KindHuggingFace, KindChatGPT:
		if provider.Token == "" {
			return "provider token missing", false
		}
	default:
		return fmt.Sprintf("unknown provider kind %q", provider.Kind), false
	}
	return "", true
}

// dispatch 按后端类型分发一次调用
func (g *Generator) dispatch(ctx context.Context, provider ResolvedProvider, prompt string, maxNewTokens int, params SamplingParams) (string, error) {
	switch provider.Kind {
	case KindLocal:
		pipeline, _ := g.pool.Local(ctx)
		return generateLocal(ctx, pipeline, prompt, maxNewTokens, params)

	case KindRemoteDefault, KindLMStudio:
		return g.completion.Complete(ctx, provider.EndpointURL, "", "", prompt, maxNewTokens, params, false)

	case KindHuggingFace:
		return g.huggingFace.Generate(ctx, provider.Token, prompt, maxNewTokens, params)

	case KindChatGPT:
		model := provider.Model
		if model == "" {
			model = g.chatGPTModel
		}
		return g.completion.Complete(ctx, provider.EndpointURL, provider.Token, model, prompt, maxNewTokens, params, true)

	default:
		return "", fmt.Errorf("unknown provider kind %q", provider.Kind)
	}
}

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > 120 {
		return msg[:120] + "..."
	}
	return msg
}
