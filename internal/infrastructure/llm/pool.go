// Package llm 提供多后端文本生成适配层
package llm

import (
	"context"
	"sync"
	"time"

	"gameforge-api/pkg/logger"
)

// ProviderHandlePool 持有进程级共享的后端句柄：
// 延迟初始化的本地模型管线，以及远程服务最近一次探活结果。
// 两者各自只初始化一次，之后并发只读。
type ProviderHandlePool struct {
	factory PipelineFactory

	localOnce sync.Once
	local     LocalPipeline
	localErr  error

	healthMu      sync.Mutex
	remoteHealthy map[string]bool
	probe         func(ctx context.Context, baseURL string) error
}

// NewProviderHandlePool 创建后端句柄池。
// factory 为 nil 表示本地管线不可用，对应请求降级到模板内容。
func NewProviderHandlePool(factory PipelineFactory, probe func(ctx context.Context, baseURL string) error) *ProviderHandlePool {
	return &ProviderHandlePool{
		factory:       factory,
		probe:         probe,
		remoteHealthy: make(map[string]bool),
	}
}

// Local 获取进程内管线，首次调用触发初始化；初始化未完成或失败时返回 false
func (p *ProviderHandlePool) Local(ctx context.Context) (LocalPipeline, bool) {
	if p.factory == nil {
		return nil, false
	}

	p.localOnce.Do(func() {
		start := time.Now()
		p.local, p.localErr = p.factory(ctx)
		if p.localErr != nil {
			logger.FromContext(ctx).Warn("local pipeline initialization failed",
				"error", p.localErr, "elapsed", time.Since(start))
			return
		}
		logger.FromContext(ctx).Info("local pipeline initialized", "elapsed", time.Since(start))
	})

	if p.localErr != nil || p.local == nil {
		return nil, false
	}
	return p.local, true
}

// RemoteReachable 返回远程端点的已知可达状态，未探测过时执行一次探活并记忆结果
func (p *ProviderHandlePool) RemoteReachable(ctx context.Context, baseURL string) bool {
	if baseURL == "" {
		return false
	}

	p.healthMu.Lock()
	defer p.healthMu.Unlock()

	if healthy, ok := p.remoteHealthy[baseURL]; ok {
		return healthy
	}

	healthy := true
	if p.probe != nil {
		if err := p.probe(ctx, baseURL); err != nil {
			logger.FromContext(ctx).Warn("remote llm health probe failed",
				"endpoint", baseURL, "error", err)
			healthy = false
		}
	}
	p.remoteHealthy[baseURL] = healthy
	return healthy
}

// InvalidateHealth 清除探活缓存，设置变更后调用
func (p *ProviderHandlePool) InvalidateHealth() {
	p.healthMu.Lock()
	defer p.healthMu.Unlock()
	p.remoteHealthy = make(map[string]bool)
}
