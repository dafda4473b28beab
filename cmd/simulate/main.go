package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"

	"alpacapc-be/internal/pkg/logger"
	"alpacapc-be/pkg/catalog"
	"alpacapc-be/pkg/recommend"
)

// Offline driver for the recommendation pipeline: runs everything up to (but
// not including) the generation call, so vocabulary and ranking changes can be
// inspected against a real catalog export without an API key.
func main() {
	catalogPath := flag.String("catalog", "data/item_data.csv", "path to the item export CSV")
	message := flag.String("message", "ゲームがしたい", "current user message")
	history := flag.String("history", "", "prior user turns, separated by ';'")
	showPayload := flag.Bool("payload", false, "print the assembled prompt payload")
	flag.Parse()

	sysLogger := logger.NewZapLogger("logs/simulate.log", false)
	store := catalog.NewStore(*catalogPath, sysLogger)
	if store.Len() == 0 {
		log.Printf("[WARN] catalog is empty (path: %s)", *catalogPath)
	}

	var turns []recommend.Turn
	for _, h := range strings.Split(*history, ";") {
		if h = strings.TrimSpace(h); h != "" {
			turns = append(turns, recommend.Turn{Role: recommend.RoleUser, Content: h})
		}
	}

	contextStr := recommend.AggregateContext(*message, turns)
	intent := recommend.Classify(contextStr, *message)
	slots := recommend.ResolveSlots(contextStr, *message)
	candidates := recommend.Rank(store.Products(), *message, intent)
	decision := recommend.Decide(slots, len(candidates))

	header := color.New(color.FgCyan, color.Bold)
	header.Println("=== INTENT ===")
	fmt.Printf("form_factor=%s heavy_task=%v title_hint=%q\n", intent.FormFactor, intent.IsHeavyTask, intent.GameTitleHint)

	header.Println("=== SLOTS ===")
	fmt.Printf("use_case=%q form_factor_set=%v budget=%d game_title=%q gaming=%v\n",
		slots.UseCase, slots.FormFactorSet, slots.BudgetCeiling, slots.GameTitle, slots.IsGaming)

	header.Println("=== DECISION ===")
	stateColor := color.New(color.FgGreen)
	if !decision.Recommending() {
		stateColor = color.New(color.FgYellow)
	}
	stateColor.Printf("state=%s\n", decision.State)
	if decision.Question != "" {
		fmt.Printf("question: %s\n", decision.Question)
	}
	if len(decision.Choices) > 0 {
		fmt.Printf("choices:  %s\n", recommend.ChoiceMarker(decision.Choices))
	}

	header.Printf("=== CANDIDATES (%d) ===\n", len(candidates))
	for i, p := range candidates {
		if i >= 10 {
			fmt.Printf("... and %d more\n", len(candidates)-10)
			break
		}
		fmt.Printf("%2d. %s (%d円)\n", i+1, p.Name, p.Price)
	}

	if *showPayload {
		header.Println("=== PAYLOAD ===")
		fmt.Println(recommend.Assemble(decision, candidates, contextStr))
	}
}
