package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpacapc-be/internal/dto"
	"alpacapc-be/pkg/catalog"
	"alpacapc-be/pkg/llm"
	"alpacapc-be/pkg/recommend"
)

type fakeProvider struct {
	reply         string
	err           error
	chatCalls     int
	generateCalls int
	lastPrompt    string
	lastHistory   []llm.Message
}

func (f *fakeProvider) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	f.chatCalls++
	f.lastHistory = history
	return f.reply, f.err
}

func (f *fakeProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	f.generateCalls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

const testCatalogCSV = "商品管理番号,商品名,PC用メイン商品説明文,販売価格,在庫数,商品ページURL\n" +
	"note-1,中古ノートパソコン 事務向け,Core i5 メモリ8GB,30000,1,https://item.rakuten.co.jp/alpacapc/note-1/\n" +
	"desk-1,ゲーミングデスクトップ,GeForce RTX 3060 搭載,150000,1,https://item.rakuten.co.jp/alpacapc/desk-1/\n"

func newTestService(t *testing.T, provider llm.Provider, cacheTTL time.Duration) IChatService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "item_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogCSV), 0o644))

	store := catalog.NewStore(path, nopLogger{})
	require.Equal(t, 2, store.Len())

	return NewChatService(store, provider, nopLogger{}, 5*time.Second, cacheTTL)
}

func TestSupportBuildsPersonaLedHistory(t *testing.T) {
	provider := &fakeProvider{reply: "こんにちは！アルパカくんです。"}
	svc := newTestService(t, provider, 0)

	res, err := svc.Support(context.Background(), &dto.SupportChatRequest{
		Message: "注文をキャンセルしたい",
		History: []dto.ChatTurnDTO{
			{Role: "user", Content: "こんにちは"},
			{Role: "assistant", Content: "ご用件をどうぞ"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, provider.reply, res.Reply)

	require.Len(t, provider.lastHistory, 4)
	// Persona rides as the opening user turn, the current message closes.
	assert.Equal(t, "user", provider.lastHistory[0].Role)
	assert.Equal(t, "注文をキャンセルしたい", provider.lastHistory[3].Content)
}

func TestRecommendGamingReturnsProducts(t *testing.T) {
	provider := &fakeProvider{reply: "こちらがおすすめです！"}
	svc := newTestService(t, provider, 0)

	res, err := svc.Recommend(context.Background(), &dto.RecommendRequest{
		Message: "フォートナイトがやりたい",
		History: []dto.ChatTurnDTO{{Role: "user", Content: "ゲームがしたい"}},
	})
	require.NoError(t, err)

	assert.Equal(t, string(recommend.StateRecommend), res.State)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "desk-1", res.Products[0].Id)
	assert.Contains(t, provider.lastPrompt, "ID:desk-1")
}

func TestRecommendQuestionStateHidesProducts(t *testing.T) {
	provider := &fakeProvider{reply: "どんな用途でお使いですか？"}
	svc := newTestService(t, provider, 0)

	res, err := svc.Recommend(context.Background(), &dto.RecommendRequest{Message: "こんにちは"})
	require.NoError(t, err)

	assert.Equal(t, string(recommend.StateNeedUseCase), res.State)
	assert.NotEmpty(t, res.Choices)
	assert.Empty(t, res.Products)
	assert.NotContains(t, provider.lastPrompt, "【在庫リスト】")
}

func TestRecommendLightPathAsksBeforePresenting(t *testing.T) {
	provider := &fakeProvider{reply: "ご希望を教えてください。"}
	svc := newTestService(t, provider, 0)

	res, err := svc.Recommend(context.Background(), &dto.RecommendRequest{Message: "ネットが見たいだけ"})
	require.NoError(t, err)
	assert.Equal(t, string(recommend.StateNeedFormFactorAndBudget), res.State)
	assert.Empty(t, res.Products)

	res, err = svc.Recommend(context.Background(), &dto.RecommendRequest{
		Message: "ノートパソコンで予算5万円",
		History: []dto.ChatTurnDTO{{Role: "user", Content: "ネットが見たいだけ"}},
	})
	require.NoError(t, err)
	assert.Equal(t, string(recommend.StatePresent), res.State)
	require.NotEmpty(t, res.Products)
	assert.Equal(t, "note-1", res.Products[0].Id)
}

func TestRecommendCachesIdenticalPayloads(t *testing.T) {
	provider := &fakeProvider{reply: "おすすめです！"}
	svc := newTestService(t, provider, time.Minute)

	req := &dto.RecommendRequest{
		Message: "フォートナイトがやりたい",
		History: []dto.ChatTurnDTO{{Role: "user", Content: "ゲームがしたい"}},
	}

	_, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.generateCalls, "identical payloads must hit the reply cache")
}

func TestRecommendProviderFailureIsBadGateway(t *testing.T) {
	provider := &fakeProvider{err: errors.New("backend down")}
	svc := newTestService(t, provider, 0)

	_, err := svc.Recommend(context.Background(), &dto.RecommendRequest{Message: "こんにちは"})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusBadGateway, fiberErr.Code)
}
