package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	completion := NewCompletionClient(5 * time.Second)
	pool := NewProviderHandlePool(nil, completion.Health)
	hf := NewHuggingFaceClient("", "mistralai/Mistral-7B-Instruct-v0.3", 5*time.Second)
	return NewGenerator(completion, hf, pool, "gpt-3.5-turbo-instruct")
}

// completionServer 返回固定文本序列，每次调用消费一项，并记录收到的请求体
func completionServer(t *testing.T, texts []string, requests *[]completionRequest) *httptest.Server {
	t.Helper()
	var calls int64
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/completions", r.URL.Path)

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if requests != nil {
			*requests = append(*requests, req)
		}

		n := atomic.AddInt64(&calls, 1)
		idx := int(n) - 1
		if idx >= len(texts) {
			idx = len(texts) - 1
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"text":%q}]}`, texts[idx])
	}))
}

func TestGenerateSuccess(t *testing.T) {
	var requests []completionRequest
	srv := completionServer(t, []string{"A sprawling metropolis built inside a dormant volcano #4512"}, &requests)
	defer srv.Close()

	g := newTestGenerator()
	result := g.Generate(context.Background(), GenerationRequest{
		Prompt:       "Describe the setting",
		MaxNewTokens: 60,
		Patience:     PatienceBalanced,
	}, ResolvedProvider{Kind: KindLMStudio, EndpointURL: srv.URL})

	assert.False(t, result.Degraded)
	assert.Equal(t, "A sprawling metropolis built inside a dormant volcano", result.Text)
	assert.Equal(t, result.Text, result.Annotated())

	require.Len(t, requests, 1)
	req := requests[0]
	assert.True(t, strings.HasPrefix(req.Prompt, "Describe the setting #"), "prompt should carry a dedup suffix: %q", req.Prompt)
	assert.Equal(t, 60, req.MaxTokens)
	assert.InDelta(t, 0.9, req.Temperature, 1e-9)
	assert.InDelta(t, 0.9, req.TopP, 1e-9)
	require.NotNil(t, req.RepetitionPenalty)
	assert.InDelta(t, 1.2, *req.RepetitionPenalty, 1e-9)
	assert.Nil(t, req.FrequencyPenalty)
}

func TestGenerateSuffixDiffersBetweenCalls(t *testing.T) {
	var requests []completionRequest
	srv := completionServer(t, []string{"A bastion carved from a fallen moon"}, &requests)
	defer srv.Close()

	g := newTestGenerator()
	provider := ResolvedProvider{Kind: KindLMStudio, EndpointURL: srv.URL}
	req := GenerationRequest{Prompt: "Describe the setting", Patience: PatienceBalanced}

	var results []Result
	for i := 0; i < 3; i++ {
		results = append(results, g.Generate(context.Background(), req, provider))
	}
	for _, r := range results {
		assert.False(t, r.Degraded)
		assert.Equal(t, results[0].Text, r.Text, "the suffix never reaches the output")
	}

	require.Len(t, requests, 3)
	prompts := map[string]struct{}{}
	for _, r := range requests {
		prompts[r.Prompt] = struct{}{}
	}
	assert.Greater(t, len(prompts), 1, "sequential calls must carry distinct dedup suffixes")
}

func TestGenerateNoProviderWhenUnconfigured(t *testing.T) {
	g := newTestGenerator()
	ctx := context.Background()

	cases := []struct {
		name     string
		provider ResolvedProvider
	}{
		{"lmstudio without url", ResolvedProvider{Kind: KindLMStudio}},
		{"remote without url", ResolvedProvider{Kind: KindRemoteDefault}},
		{"huggingface without token", ResolvedProvider{Kind: KindHuggingFace}},
		{"chatgpt without token", ResolvedProvider{Kind: KindChatGPT}},
		{"local without pipeline", ResolvedProvider{Kind: KindLocal}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Generate(ctx, GenerationRequest{Prompt: "A hero"}, tc.provider)
			assert.True(t, result.Degraded)
			assert.Equal(t, ReasonNoProvider, result.Reason)
			assert.Equal(t, "A hero", result.Text)
			assert.Equal(t, "A hero [random mode]", result.Annotated())
			assert.False(t, g.Usable(ctx, tc.provider))
		})
	}
}

func TestGenerateProviderErrorDoesNotRetry(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGenerator()
	result := g.Generate(context.Background(), GenerationRequest{Prompt: "The villain"}, ResolvedProvider{
		Kind:        KindLMStudio,
		EndpointURL: srv.URL,
	})

	assert.True(t, result.Degraded)
	assert.Equal(t, ReasonProviderError, result.Reason)
	assert.Equal(t, "The villain", result.Text)
	assert.Contains(t, result.Detail, string(KindLMStudio))
	assert.Contains(t, result.Annotated(), "[generation error: ")
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls), "transport errors must not be retried")
}

func TestGenerateRetriesWithEscalatedPatience(t *testing.T) {
	var requests []completionRequest
	srv := completionServer(t, []string{"x", "An exiled cartographer hunting a living map"}, &requests)
	defer srv.Close()

	g := newTestGenerator()
	result := g.Generate(context.Background(), GenerationRequest{
		Prompt:   "Who is the hero",
		Patience: PatienceFast,
	}, ResolvedProvider{Kind: KindLMStudio, EndpointURL: srv.URL})

	assert.False(t, result.Degraded)
	assert.Equal(t, "An exiled cartographer hunting a living map", result.Text)

	require.Len(t, requests, 2)
	assert.InDelta(t, 0.7, requests[0].Temperature, 1e-9)
	assert.InDelta(t, 0.9, requests[1].Temperature, 1e-9, "retry should escalate patience by one level")
}

func TestGenerateInsufficientOutputAfterRetry(t *testing.T) {
	var requests []completionRequest
	srv := completionServer(t, []string{"ok"}, &requests)
	defer srv.Close()

	g := newTestGenerator()
	result := g.Generate(context.Background(), GenerationRequest{
		Prompt:   "Name the kingdom",
		Patience: PatienceCreative,
	}, ResolvedProvider{Kind: KindLMStudio, EndpointURL: srv.URL})

	assert.True(t, result.Degraded)
	assert.Equal(t, ReasonInsufficientOutput, result.Reason)
	assert.Equal(t, "Name the kingdom", result.Text)
	assert.Equal(t, "Name the kingdom [random mode]", result.Annotated())
	assert.Len(t, requests, 2, "one retry and no more")
	// 已在最高档位，重试不再升档
	assert.InDelta(t, 1.2, requests[1].Temperature, 1e-9)
}

func TestGenerateChatGPTUsesFrequencyPenalty(t *testing.T) {
	var requests []completionRequest
	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)
		fmt.Fprint(w, `{"choices":[{"text":"A rebellion simmering beneath the capital"}]}`)
	}))
	defer srv.Close()

	g := newTestGenerator()
	result := g.Generate(context.Background(), GenerationRequest{
		Prompt:   "Describe the conflict",
		Patience: PatienceBalanced,
	}, ResolvedProvider{Kind: KindChatGPT, EndpointURL: srv.URL, Token: "sk-test"})

	assert.False(t, result.Degraded)
	assert.Equal(t, "Bearer sk-test", authHeader)

	require.Len(t, requests, 1)
	req := requests[0]
	assert.Equal(t, "gpt-3.5-turbo-instruct", req.Model)
	assert.Nil(t, req.RepetitionPenalty)
	require.NotNil(t, req.FrequencyPenalty)
	assert.InDelta(t, 0.2, *req.FrequencyPenalty, 1e-9)
}

func TestCompleteRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	client := NewCompletionClient(5 * time.Second)
	_, err := client.Complete(context.Background(), srv.URL, "", "", "prompt", 50, ParamsForPatience(PatienceBalanced), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestCompletionClientHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewCompletionClient(5 * time.Second)
	assert.NoError(t, client.Health(context.Background(), srv.URL))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()
	assert.Error(t, client.Health(context.Background(), down.URL))
}

func TestPoolRemoteReachableMemoizesProbe(t *testing.T) {
	var probes int64
	probeErr := fmt.Errorf("connection refused")
	pool := NewProviderHandlePool(nil, func(ctx context.Context, baseURL string) error {
		atomic.AddInt64(&probes, 1)
		return probeErr
	})
	ctx := context.Background()

	assert.False(t, pool.RemoteReachable(ctx, "http://llm:5000"))
	assert.False(t, pool.RemoteReachable(ctx, "http://llm:5000"))
	assert.EqualValues(t, 1, atomic.LoadInt64(&probes), "probe result must be memoized per endpoint")

	probeErr = nil
	assert.False(t, pool.RemoteReachable(ctx, "http://llm:5000"), "stale result holds until invalidated")

	pool.InvalidateHealth()
	assert.True(t, pool.RemoteReachable(ctx, "http://llm:5000"))
	assert.EqualValues(t, 2, atomic.LoadInt64(&probes))
}

func TestPoolRemoteReachableEmptyURL(t *testing.T) {
	pool := NewProviderHandlePool(nil, nil)
	assert.False(t, pool.RemoteReachable(context.Background(), ""))
}

func TestPoolLocalWithoutFactory(t *testing.T) {
	pool := NewProviderHandlePool(nil, nil)
	_, ok := pool.Local(context.Background())
	assert.False(t, ok)
}

func TestPoolLocalFactoryError(t *testing.T) {
	pool := NewProviderHandlePool(func(ctx context.Context) (LocalPipeline, error) {
		return nil, fmt.Errorf("weights missing")
	}, nil)

	_, ok := pool.Local(context.Background())
	assert.False(t, ok)
	// 初始化失败只发生一次，后续调用直接返回
	_, ok = pool.Local(context.Background())
	assert.False(t, ok)
}
