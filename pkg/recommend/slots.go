package recommend

import (
	"regexp"
	"strconv"
	"strings"
)

// UseCase is the resolved use-case slot.
type UseCase string

const (
	UseCaseUnset UseCase = ""
	UseCaseLight UseCase = "light"
	UseCaseHeavy UseCase = "heavy"
)

// Slots is the per-request slot state. It is derived fresh from the search
// context on every call; there is no cross-request persistence.
type Slots struct {
	UseCase       UseCase
	FormFactor    FormFactor // FormFactorEither means "no preference", zero value means unset
	FormFactorSet bool
	BudgetCeiling int // yen; 0 means unset
	GameTitle     string
	IsGaming      bool // heavy via gaming terms (vs. creator work)
}

var (
	budgetManEnRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*万`)
	budgetYenRe   = regexp.MustCompile(`([0-9][0-9,]*)\s*円`)
)

// ResolveSlots infers the four dialogue slots from the aggregated context and
// the current message. Absent signals stay unset; the controller decides what
// to ask next.
func ResolveSlots(contextStr, message string) Slots {
	intent := Classify(contextStr, message)

	slots := Slots{
		GameTitle: intent.GameTitleHint,
	}

	if intent.IsHeavyTask {
		slots.UseCase = UseCaseHeavy
		slots.IsGaming = containsAnyFold(contextStr, GameGenreTerms) ||
			containsAnyFold(contextStr, GameTitleTerms)
	} else if containsAnyFold(contextStr, LightUseTerms) {
		slots.UseCase = UseCaseLight
	}

	if containsAny(contextStr, LaptopTerms) || containsAny(contextStr, DesktopTerms) {
		slots.FormFactor = intent.FormFactor
		slots.FormFactorSet = true
	} else if containsAnyFold(contextStr, EitherFormFactorTerms) {
		slots.FormFactor = FormFactorEither
		slots.FormFactorSet = true
	}

	slots.BudgetCeiling = parseBudgetYen(contextStr)

	return slots
}

// parseBudgetYen extracts a yen ceiling from free text. "5万" and "5万円"
// mean 50000; "48,000円" means 48000. First match wins.
func parseBudgetYen(s string) int {
	if m := budgetManEnRe.FindStringSubmatch(s); m != nil {
		if man, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(man * 10000)
		}
	}
	if m := budgetYenRe.FindStringSubmatch(s); m != nil {
		digits := strings.ReplaceAll(m[1], ",", "")
		if yen, err := strconv.Atoi(digits); err == nil {
			return yen
		}
	}
	return 0
}
