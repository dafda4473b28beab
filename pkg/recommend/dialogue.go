package recommend

// State names one node of the slot-filling dialogue machine.
type State string

const (
	StateNeedUseCase             State = "NEED_USE_CASE"
	StateNeedGameTitle           State = "NEED_GAME_TITLE"
	StateRecommend               State = "RECOMMEND"
	StateNeedFormFactorAndBudget State = "NEED_FORM_FACTOR_AND_BUDGET"
	StatePresent                 State = "PRESENT"
)

// Decision is the controller's verdict for one turn: either a blocking
// question (with UI choices) or a go-ahead to present candidates.
type Decision struct {
	State    State
	Question string   // blocking question, empty for recommending states
	Choices  []string // literal option strings for UI buttons
	Confirm  string   // trailing (non-blocking) confirmation on the gaming path
}

// Recommending reports whether this turn emits the ranked candidate list.
func (d Decision) Recommending() bool {
	return d.State == StateRecommend || d.State == StatePresent
}

// Fixed choice sets. These literals round-trip: each option contains a
// vocabulary term, so selecting a button resolves the matching slot on the
// next request without any answer-validation logic here.
var (
	useCaseChoices = []string{
		"ゲームをしたい",
		"ネット・動画を見たい",
		"仕事・書類作成に使いたい",
		"動画編集・イラスト制作をしたい",
	}
	gameTitleChoices = []string{
		"フォートナイト",
		"Apex Legends",
		"原神",
		"マインクラフト",
		"その他のゲーム",
	}
	formFactorChoices = []string{
		"ノートパソコン",
		"デスクトップ",
		"どちらでもOK",
	}
	confirmChoices = []string{
		"デスクトップでOK",
		"ノートパソコンがいい",
		"モニターセットも欲しい",
	}
)

// Decide evaluates the dialogue states in fixed priority order; the first
// unmet condition wins. The heavy/gaming path shows candidates early and
// confirms form factor afterwards; the light/general path collects form
// factor and budget before recommending anything. That asymmetry is a
// contract: collapsing the two paths changes observable question sequencing.
func Decide(slots Slots, candidateCount int) Decision {
	// 1. No use-case signal at all: nothing safe to recommend yet.
	if slots.UseCase == UseCaseUnset {
		return Decision{
			State:    StateNeedUseCase,
			Question: "このパソコンは、主にどんな用途でお使いになりますか？",
			Choices:  useCaseChoices,
		}
	}

	if slots.UseCase == UseCaseHeavy {
		// 2. Gaming without a concrete title: requirements vary wildly per
		// title, so ask before recommending. Creator work skips this.
		if slots.IsGaming && slots.GameTitle == "" {
			return Decision{
				State:    StateNeedGameTitle,
				Question: "どのゲームをプレイされる予定ですか？",
				Choices:  gameTitleChoices,
			}
		}

		// 3. Show candidates early, refine after. Form factor is only a
		// trailing confirmation here, never a blocking question.
		if candidateCount > 0 {
			return Decision{
				State:   StateRecommend,
				Confirm: "デスクトップでも大丈夫ですか？モニターセットのご希望もあれば教えてください。",
				Choices: confirmChoices,
			}
		}

		// No suitable stock on the fast path: fall back to slot collection.
		return Decision{
			State:    StateNeedFormFactorAndBudget,
			Question: "ご希望に合う在庫が見つかりませんでした。本体の形とご予算を教えていただけると、近い商品をお探しできます。",
			Choices:  formFactorChoices,
		}
	}

	// 4. Light/general use: both form factor and budget are hard
	// prerequisites before any recommendation.
	if !slots.FormFactorSet || slots.BudgetCeiling == 0 {
		return Decision{
			State:    StateNeedFormFactorAndBudget,
			Question: "ノートパソコンとデスクトップ、どちらがお好みですか？あわせてご予算も教えてください。",
			Choices:  formFactorChoices,
		}
	}

	// 5. All slots resolved: present the ranked list.
	return Decision{State: StatePresent}
}
