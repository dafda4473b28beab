package recommend

import (
	"strings"
)

// FormFactor is the classifier's form-factor verdict.
type FormFactor string

const (
	FormFactorLaptop  FormFactor = "laptop"
	FormFactorDesktop FormFactor = "desktop"
	FormFactorEither  FormFactor = "either"
)

// Intent carries the boolean/categorical signals derived from the search
// context. It never blocks: unmatched input degrades to "either" + light.
type Intent struct {
	FormFactor    FormFactor
	IsHeavyTask   bool
	GameTitleHint string // current message verbatim; interpreted downstream
}

// Classify derives intent signals from the aggregated context and the current
// message. Form-factor terms match case-sensitively; the laptop condition is
// evaluated first, so "ノートがいいけどデスクトップでも" in the current message
// releases the laptop lock.
func Classify(contextStr, message string) Intent {
	intent := Intent{FormFactor: FormFactorEither}

	if containsAny(contextStr, LaptopTerms) && !containsAny(message, DesktopTerms) {
		intent.FormFactor = FormFactorLaptop
	} else if containsAny(contextStr, DesktopTerms) {
		intent.FormFactor = FormFactorDesktop
	}

	intent.IsHeavyTask = containsAnyFold(contextStr, HeavyUseTerms())

	// The game-title slot: a known title anywhere in the context, the
	// "other game" answer, or free text once gaming talk has started. The
	// hint is the current message passed through verbatim; resolving
	// real-world game requirements is the generator's job.
	if intent.IsHeavyTask {
		switch {
		case containsAnyFold(contextStr, GameTitleTerms),
			containsAnyFold(contextStr, OtherGameTerms):
			intent.GameTitleHint = message
		case containsAnyFold(contextStr, GameGenreTerms) && message != "" &&
			!containsAnyFold(message, GameGenreTerms) &&
			!containsAnyFold(message, CreatorTerms):
			// Gaming is established and the message carries no generic term
			// of its own, so the message IS the title answer. Titles outside
			// the vocabulary must never re-trigger the title question.
			intent.GameTitleHint = message
		}
	}

	return intent
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func containsAnyFold(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
