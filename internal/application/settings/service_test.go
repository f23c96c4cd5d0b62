package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge-api/internal/config"
	"gameforge-api/internal/domain/entity"
	"gameforge-api/internal/infrastructure/llm"
	"gameforge-api/internal/infrastructure/persistence/redis"
)

// fakeSettingsRepo 内存版设置仓储，记录写入次数
type fakeSettingsRepo struct {
	global          *entity.GlobalAISettings
	users           map[string]*entity.UserAISettings
	saveGlobalCalls int
	saveUserCalls   int
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{users: make(map[string]*entity.UserAISettings)}
}

func (f *fakeSettingsRepo) GetGlobal(ctx context.Context) (*entity.GlobalAISettings, error) {
	return f.global, nil
}

func (f *fakeSettingsRepo) SaveGlobal(ctx context.Context, settings *entity.GlobalAISettings) error {
	f.saveGlobalCalls++
	f.global = settings
	return nil
}

func (f *fakeSettingsRepo) GetByUser(ctx context.Context, userID string) (*entity.UserAISettings, error) {
	return f.users[userID], nil
}

func (f *fakeSettingsRepo) SaveUser(ctx context.Context, settings *entity.UserAISettings) error {
	f.saveUserCalls++
	f.users[settings.UserID] = settings
	return nil
}

// fakeCache 内存版缓存，记录失效次数
type fakeCache struct {
	entries             map[string][]byte
	globalInvalidations int
	userInvalidations   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if val, ok := f.entries[key]; ok {
		return val, nil
	}
	return nil, fmt.Errorf("cache miss")
}

func (f *fakeCache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func() (interface{}, error)) ([]byte, error) {
	if val, ok := f.entries[key]; ok {
		return val, nil
	}
	data, err := loader()
	if err != nil {
		return nil, err
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	f.entries[key] = bytes
	return bytes, nil
}

func (f *fakeCache) InvalidateGlobalSettings(ctx context.Context) error {
	f.globalInvalidations++
	delete(f.entries, redis.GlobalSettingsKey)
	return nil
}

func (f *fakeCache) InvalidateUserSettings(ctx context.Context, userID string) error {
	f.userInvalidations++
	delete(f.entries, redis.UserSettingsKey(userID))
	return nil
}

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		RemoteURL:        "http://127.0.0.1:5000",
		HuggingFaceModel: "mistralai/Mistral-7B-Instruct-v0.3",
		ChatGPTURL:       "https://api.openai.com",
		ChatGPTModel:     "gpt-3.5-turbo-instruct",
	}
}

func newTestService(repo *fakeSettingsRepo, cache *fakeCache) *Service {
	return NewService(repo, cache, testLLMConfig(), llm.NewProviderHandlePool(nil, nil))
}

func TestGetGlobalSettingsAutoCreatesSingleton(t *testing.T) {
	repo := newFakeSettingsRepo()
	cache := newFakeCache()
	svc := newTestService(repo, cache)
	ctx := context.Background()

	global, err := svc.GetGlobalSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.GlobalSettingsID, global.ID)
	assert.False(t, global.UseRemoteLLM)
	assert.Equal(t, "http://127.0.0.1:5000", global.RemoteLLMURL)

	// 第二次读取命中缓存，不再写库
	_, err = svc.GetGlobalSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saveGlobalCalls, "the singleton row is created exactly once")
}

func TestResolveAnonymousDefaultsToLocal(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := newTestService(repo, newFakeCache())

	res := svc.Resolve(context.Background(), "")
	assert.Equal(t, llm.KindLocal, res.Provider.Kind)
	assert.True(t, res.GenerateImages)
	require.NotNil(t, repo.global, "resolving triggers singleton creation")
	assert.False(t, repo.global.UseRemoteLLM)
}

func TestResolveGlobalRemote(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.global = &entity.GlobalAISettings{
		ID:           entity.GlobalSettingsID,
		UseRemoteLLM: true,
		RemoteLLMURL: "http://llm-farm:5000",
	}
	svc := newTestService(repo, newFakeCache())

	res := svc.Resolve(context.Background(), "")
	assert.Equal(t, llm.KindRemoteDefault, res.Provider.Kind)
	assert.Equal(t, "http://llm-farm:5000", res.Provider.EndpointURL)
}

func TestResolveGlobalRemoteEmptyURLFallsBackToConfig(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.global = &entity.GlobalAISettings{ID: entity.GlobalSettingsID, UseRemoteLLM: true}
	svc := newTestService(repo, newFakeCache())

	res := svc.Resolve(context.Background(), "")
	assert.Equal(t, llm.KindRemoteDefault, res.Provider.Kind)
	assert.Equal(t, "http://127.0.0.1:5000", res.Provider.EndpointURL)
}

func TestResolveLazilyCreatesUserSettings(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := newTestService(repo, newFakeCache())

	res := svc.Resolve(context.Background(), "user-1")
	assert.Equal(t, llm.KindLocal, res.Provider.Kind)
	assert.True(t, res.GenerateImages)

	created, ok := repo.users["user-1"]
	require.True(t, ok, "first resolve creates the user settings row")
	assert.Equal(t, entity.AIServiceLocal, created.AIService)
	assert.True(t, created.GenerateImages)
	assert.Equal(t, 1, repo.saveUserCalls)
}

func TestResolveLMStudioWithoutURLIsUnusable(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.users["user-1"] = &entity.UserAISettings{
		UserID:    "user-1",
		AIService: entity.AIServiceLMStudio,
	}
	svc := newTestService(repo, newFakeCache())
	ctx := context.Background()

	res := svc.Resolve(ctx, "user-1")
	assert.Equal(t, llm.KindLMStudio, res.Provider.Kind)
	assert.Empty(t, res.Provider.EndpointURL)

	generator := llm.NewGenerator(llm.NewCompletionClient(time.Second), nil,
		llm.NewProviderHandlePool(nil, nil), "")
	assert.False(t, generator.Usable(ctx, res.Provider),
		"missing lmstudio url resolves to an unusable provider, not an error")
}

func TestResolveUserSelectedServices(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.users["hf"] = &entity.UserAISettings{
		UserID: "hf", AIService: entity.AIServiceHuggingFace,
		HuggingFaceToken: "hf-token", GenerateImages: true,
	}
	repo.users["gpt"] = &entity.UserAISettings{
		UserID: "gpt", AIService: entity.AIServiceChatGPT,
		ChatGPTToken: "sk-token",
	}
	svc := newTestService(repo, newFakeCache())
	ctx := context.Background()

	hf := svc.Resolve(ctx, "hf")
	assert.Equal(t, llm.KindHuggingFace, hf.Provider.Kind)
	assert.Equal(t, "hf-token", hf.Provider.Token)
	assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.3", hf.Provider.Model)
	assert.Equal(t, "hf-token", hf.ImageToken, "the huggingface token doubles as the image token")

	gpt := svc.Resolve(ctx, "gpt")
	assert.Equal(t, llm.KindChatGPT, gpt.Provider.Kind)
	assert.Equal(t, "sk-token", gpt.Provider.Token)
	assert.Equal(t, "https://api.openai.com", gpt.Provider.EndpointURL)
	assert.Equal(t, "gpt-3.5-turbo-instruct", gpt.Provider.Model)
	assert.False(t, gpt.GenerateImages)
}

func TestUpdateGlobalSettingsInvalidatesCache(t *testing.T) {
	repo := newFakeSettingsRepo()
	cache := newFakeCache()
	svc := newTestService(repo, cache)
	ctx := context.Background()

	// 先填充缓存
	_, err := svc.GetGlobalSettings(ctx)
	require.NoError(t, err)
	require.Contains(t, cache.entries, redis.GlobalSettingsKey)

	updated, err := svc.UpdateGlobalSettings(ctx, true, "http://llm-farm:5000")
	require.NoError(t, err)
	assert.True(t, updated.UseRemoteLLM)
	assert.Equal(t, "http://llm-farm:5000", updated.RemoteLLMURL)
	assert.Equal(t, 1, cache.globalInvalidations, "writes invalidate the cache synchronously")
	assert.NotContains(t, cache.entries, redis.GlobalSettingsKey)

	// 后续读取看到新值
	global, err := svc.GetGlobalSettings(ctx)
	require.NoError(t, err)
	assert.True(t, global.UseRemoteLLM)
	assert.Equal(t, "http://llm-farm:5000", global.RemoteLLMURL)
}

func TestUpdateGlobalSettingsKeepsDefaultURLWhenEmpty(t *testing.T) {
	svc := newTestService(newFakeSettingsRepo(), newFakeCache())

	updated, err := svc.UpdateGlobalSettings(context.Background(), true, "")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultRemoteLLMURL, updated.RemoteLLMURL)
}

func TestUpdateUserSettingsPartialUpdate(t *testing.T) {
	repo := newFakeSettingsRepo()
	cache := newFakeCache()
	svc := newTestService(repo, cache)
	ctx := context.Background()

	service := entity.AIServiceHuggingFace
	token := "hf-token"
	updated, err := svc.UpdateUserSettings(ctx, "user-1", UserSettingsUpdate{
		AIService:        &service,
		HuggingFaceToken: &token,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AIServiceHuggingFace, updated.AIService)
	assert.Equal(t, "hf-token", updated.HuggingFaceToken)
	assert.True(t, updated.GenerateImages, "untouched fields keep their defaults")

	disabled := false
	updated, err = svc.UpdateUserSettings(ctx, "user-1", UserSettingsUpdate{GenerateImages: &disabled})
	require.NoError(t, err)
	assert.False(t, updated.GenerateImages)
	assert.Equal(t, entity.AIServiceHuggingFace, updated.AIService, "nil fields stay unchanged")
	assert.Equal(t, 2, cache.userInvalidations)
}
