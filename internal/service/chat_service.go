package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"

	"alpacapc-be/internal/constant"
	"alpacapc-be/internal/dto"
	"alpacapc-be/internal/entity"
	"alpacapc-be/internal/pkg/logger"
	"alpacapc-be/pkg/catalog"
	"alpacapc-be/pkg/llm"
	"alpacapc-be/pkg/recommend"
)

// IChatService defines the chat service interface
type IChatService interface {
	Support(ctx context.Context, request *dto.SupportChatRequest) (*dto.SupportChatResponse, error)
	Recommend(ctx context.Context, request *dto.RecommendRequest) (*dto.RecommendResponse, error)
}

// chatService coordinates the core pipeline: aggregate -> classify -> rank ->
// decide -> assemble -> generate. Each request is stateless; the caller's
// resent history is the only state carrier.
type chatService struct {
	catalog    *catalog.Store
	provider   llm.Provider
	replyCache *cache.Cache
	log        logger.ILogger
	timeout    time.Duration
}

func NewChatService(
	catalogStore *catalog.Store,
	provider llm.Provider,
	log logger.ILogger,
	timeout time.Duration,
	cacheTTL time.Duration,
) IChatService {
	var replyCache *cache.Cache
	if cacheTTL > 0 {
		replyCache = cache.New(cacheTTL, 10*time.Minute)
	}

	return &chatService{
		catalog:    catalogStore,
		provider:   provider,
		replyCache: replyCache,
		log:        log,
		timeout:    timeout,
	}
}

// Support forwards the conversation to the support persona. No catalog logic.
func (cs *chatService) Support(ctx context.Context, request *dto.SupportChatRequest) (*dto.SupportChatResponse, error) {
	messages := make([]llm.Message, 0, len(request.History)+2)
	// Gemini has no system role; the persona rides as the opening user turn.
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleUser, Content: constant.SupportSystemPromptV1})
	for _, turn := range request.History {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleUser, Content: request.Message})

	cctx, cancel := context.WithTimeout(ctx, cs.timeout)
	defer cancel()

	reply, err := cs.provider.Chat(cctx, messages)
	if err != nil {
		cs.log.Error("chat", "Support generation failed", map[string]interface{}{"error": err.Error()})
		return nil, fiber.NewError(fiber.StatusBadGateway, "generation backend unavailable")
	}

	return &dto.SupportChatResponse{Reply: reply}, nil
}

// Recommend runs the candidate filtering/ranking engine and the slot-filling
// dialogue controller, then delegates prose to the generation collaborator.
func (cs *chatService) Recommend(ctx context.Context, request *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	contextStr := recommend.AggregateContext(request.Message, toTurns(request.History))
	intent := recommend.Classify(contextStr, request.Message)
	slots := recommend.ResolveSlots(contextStr, request.Message)

	candidates := recommend.Rank(cs.catalog.Products(), request.Message, intent)
	decision := recommend.Decide(slots, len(candidates))

	cs.log.Info("chat", "Dialogue decision", map[string]interface{}{
		"state":       string(decision.State),
		"form_factor": string(intent.FormFactor),
		"heavy_task":  intent.IsHeavyTask,
		"candidates":  len(candidates),
	})

	payload := recommend.Assemble(decision, candidates, contextStr)

	reply, err := cs.generate(ctx, payload)
	if err != nil {
		cs.log.Error("chat", "Recommend generation failed", map[string]interface{}{"error": err.Error()})
		return nil, fiber.NewError(fiber.StatusBadGateway, "generation backend unavailable")
	}

	response := &dto.RecommendResponse{
		Reply:   reply,
		State:   string(decision.State),
		Choices: decision.Choices,
	}
	if decision.Recommending() {
		response.Products = toProductDTOs(candidates)
	}
	return response, nil
}

// generate calls the collaborator with a per-request budget, memoizing by
// payload hash. The payload is pure data, so resending (or replaying from
// cache) is idempotent.
func (cs *chatService) generate(ctx context.Context, payload string) (string, error) {
	key := fmt.Sprintf("%x", md5.Sum([]byte(payload)))
	if cs.replyCache != nil {
		if cached, found := cs.replyCache.Get(key); found {
			return cached.(string), nil
		}
	}

	cctx, cancel := context.WithTimeout(ctx, cs.timeout)
	defer cancel()

	reply, err := cs.provider.Generate(cctx, payload)
	if err != nil {
		return "", err
	}

	if cs.replyCache != nil {
		cs.replyCache.Set(key, reply, cache.DefaultExpiration)
	}
	return reply, nil
}

func toTurns(history []dto.ChatTurnDTO) []recommend.Turn {
	turns := make([]recommend.Turn, len(history))
	for i, h := range history {
		turns[i] = recommend.Turn{Role: h.Role, Content: h.Content}
	}
	return turns
}

func toProductDTOs(candidates []entity.Product) []dto.ProductDTO {
	products := make([]dto.ProductDTO, len(candidates))
	for i, p := range candidates {
		products[i] = dto.ProductDTO{
			Id:         p.Id,
			Name:       p.Name,
			Price:      p.Price,
			ProductURL: p.ProductURL,
			ImageURL:   p.ImageURL,
		}
	}
	return products
}
