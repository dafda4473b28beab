package recommend

import (
	"sort"
	"strings"

	"alpacapc-be/internal/entity"
)

// MaxCandidates bounds the ranked list handed to the generation collaborator.
// Sized for recall-preserving triage: the generator weighs budget/performance
// trade-offs itself, so it needs breadth, not a single pre-picked winner.
const MaxCandidates = 50

var qualifierStripper = strings.NewReplacer("円", "", "以下", "", "以内", "")

// Rank filters the catalog by form factor, branches on task weight, orders the
// survivors, and truncates to MaxCandidates. An empty result is a legitimate
// "no matching stock" signal and is propagated, never widened away.
func Rank(products []entity.Product, message string, intent Intent) []entity.Product {
	// 1. Form-factor filter (strict; searches the row's SearchText)
	filtered := products
	switch intent.FormFactor {
	case FormFactorLaptop:
		filtered = filterBySearchText(products, LaptopTerms, false)
	case FormFactorDesktop:
		filtered = filterBySearchText(products, DesktopTerms, false)
	}

	// 2. Task-weight branch
	var ranked []entity.Product
	if intent.IsHeavyTask {
		// Heavy workloads need GPU headroom: most capable machines first.
		gpuTagged := filterBySearchText(filtered, GPUTerms, true)
		if len(gpuTagged) > 0 {
			ranked = sortByPriceDesc(gpuTagged)
		} else {
			// No discrete-GPU stock at all: show the filtered set anyway
			// rather than a dead end, still strongest-first.
			ranked = sortByPriceDesc(filtered)
		}
	} else {
		ranked = sortByKeywordScore(filtered, message)
	}

	// 3. Bound
	if len(ranked) > MaxCandidates {
		ranked = ranked[:MaxCandidates]
	}
	return ranked
}

func filterBySearchText(products []entity.Product, terms []string, fold bool) []entity.Product {
	matched := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if fold {
			if containsAnyFold(p.SearchText, terms) {
				matched = append(matched, p)
			}
		} else if containsAny(p.SearchText, terms) {
			matched = append(matched, p)
		}
	}
	return matched
}

func sortByPriceDesc(products []entity.Product) []entity.Product {
	out := make([]entity.Product, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price > out[j].Price
	})
	return out
}

// sortByKeywordScore orders light-task results by how many message tokens hit
// the row's search text, with cheaper machines first on ties. Value-first tie
// ordering is the documented contract for light use: never steer a browsing
// customer to the expensive shelf.
func sortByKeywordScore(products []entity.Product, message string) []entity.Product {
	keywords := strings.Fields(qualifierStripper.Replace(message))

	// Scores ride alongside their row: hand-maintained exports can repeat an
	// item code, so the product id is not a safe key.
	type scoredProduct struct {
		product entity.Product
		score   int
	}
	scored := make([]scoredProduct, len(products))
	for i, p := range products {
		scored[i] = scoredProduct{product: p, score: keywordScore(p.SearchText, keywords)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].product.Price < scored[j].product.Price
	})

	out := make([]entity.Product, len(scored))
	for i, s := range scored {
		out[i] = s.product
	}
	return out
}

func keywordScore(searchText string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(searchText, kw) {
			score++
		}
	}
	return score
}
