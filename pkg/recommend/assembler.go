package recommend

import (
	"fmt"
	"strings"

	"alpacapc-be/internal/constant"
	"alpacapc-be/internal/entity"
)

// DescriptionBudget caps how many runes of a product description enter the
// payload, bounding payload size per candidate.
const DescriptionBudget = 200

// ChoiceMarker formats the canonical fixed-choice-set tag the UI renders as
// buttons. The literal option set is domain configuration, not algorithm.
func ChoiceMarker(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return "[choices:" + strings.Join(options, "|") + "]"
}

// Assemble serializes the controller decision plus the ranked candidates into
// the full prompt handed to the generation collaborator. The payload is pure
// data: resending it is safe, and it must be well-formed regardless of
// collaborator health.
func Assemble(decision Decision, candidates []entity.Product, contextStr string) string {
	var payload strings.Builder

	payload.WriteString(constant.RecommendPersonaPromptV1)
	payload.WriteString("\n\n")

	writeConversation(&payload, contextStr)
	// Question turns emit no recommendation, so the inventory stays out of
	// the payload entirely; the generator cannot leak products early.
	if decision.Recommending() {
		writeInventory(&payload, candidates)
	}
	writeNextStep(&payload, decision, len(candidates))

	payload.WriteString("【行動指針】\n")
	payload.WriteString(constant.RecommendPolicyPromptV1)
	payload.WriteString("\n")

	return payload.String()
}

func writeConversation(payload *strings.Builder, contextStr string) {
	payload.WriteString("【これまでの会話（ユーザー発言のみ）】\n")
	if contextStr == "" {
		payload.WriteString("(まだ発言はありません)\n")
	} else {
		payload.WriteString(contextStr)
		payload.WriteString("\n")
	}
	payload.WriteString("\n")
}

func writeInventory(payload *strings.Builder, candidates []entity.Product) {
	payload.WriteString("【在庫リスト】\n")
	if len(candidates) == 0 {
		payload.WriteString("(該当する在庫はありません)\n\n")
		return
	}
	for _, p := range candidates {
		fmt.Fprintf(payload,
			"- ID:%s | 商品名:%s | 価格:%d円 | 商品URL:%s | 画像URL:%s | スペックなど:%s\n",
			p.Id, p.Name, p.Price, p.ProductURL, p.ImageURL,
			truncateRunes(p.Description, DescriptionBudget),
		)
	}
	payload.WriteString("\n")
}

func writeNextStep(payload *strings.Builder, decision Decision, candidateCount int) {
	payload.WriteString("【次にすべきこと】\n")

	switch decision.State {
	case StateRecommend, StatePresent:
		if candidateCount == 0 {
			payload.WriteString("在庫リストに該当商品がありません。商品をでっち上げず、正直に在庫がない旨を伝えてください。\n")
		} else {
			payload.WriteString("在庫リストの中からお客様の用途に合う商品を提案してください。リストにない商品を提案してはいけません。\n")
		}
		if decision.Confirm != "" {
			payload.WriteString("回答の最後に、次の確認を一言添えてください: ")
			payload.WriteString(decision.Confirm)
			payload.WriteString("\n")
			payload.WriteString(ChoiceMarker(decision.Choices))
			payload.WriteString("\n")
		}
	default:
		payload.WriteString("まだ商品を提案せず、次の質問だけをしてください: ")
		payload.WriteString(decision.Question)
		payload.WriteString("\n")
		payload.WriteString(ChoiceMarker(decision.Choices))
		payload.WriteString("\n")
	}

	payload.WriteString("\n")
}

func truncateRunes(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + "..."
}
