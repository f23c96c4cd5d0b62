// Package llm 提供多后端文本生成适配层
package llm

// ServiceKind 文本生成后端类型
type ServiceKind string

const (
	// KindLocal 进程内模型管线
	KindLocal ServiceKind = "LOCAL"
	// KindRemoteDefault 默认远程补全服务（OpenAI completions 兼容）
	KindRemoteDefault ServiceKind = "REMOTE_DEFAULT"
	// KindHuggingFace 托管推理端点
	KindHuggingFace ServiceKind = "HUGGINGFACE"
	// KindLMStudio 本地补全服务（OpenAI completions 兼容）
	KindLMStudio ServiceKind = "LMSTUDIO"
	// KindChatGPT OpenAI 官方补全端点
	KindChatGPT ServiceKind = "CHATGPT"
)

// ResolvedProvider 单次生成调用使用的后端配置，每次请求重新计算
type ResolvedProvider struct {
	Kind        ServiceKind
	EndpointURL string
	Token       string
	Model       string
}

// SamplingParams 采样参数
type SamplingParams struct {
	Temperature       float64
	TopP              float64
	RepetitionPenalty float64
}

// 耐心档位：1=快速低创造性，2=均衡（默认），3=慢速高创造性
const (
	PatienceFast     = 1
	PatienceBalanced = 2
	PatienceCreative = 3
)

// ClampPatience 将耐心档位收敛到 [1,3]
func ClampPatience(patience int) int {
	if patience < PatienceFast {
		return PatienceFast
	}
	if patience > PatienceCreative {
		return PatienceCreative
	}
	return patience
}

// ParamsForPatience 根据耐心档位映射采样参数
func ParamsForPatience(patience int) SamplingParams {
	switch ClampPatience(patience) {
	case PatienceFast:
		return SamplingParams{Temperature: 0.7, TopP: 0.85, RepetitionPenalty: 1.1}
	case PatienceCreative:
		return SamplingParams{Temperature: 1.2, TopP: 0.95, RepetitionPenalty: 1.3}
	default:
		return SamplingParams{Temperature: 0.9, TopP: 0.9, RepetitionPenalty: 1.2}
	}
}
