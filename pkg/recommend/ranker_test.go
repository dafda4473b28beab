package recommend

import (
	"fmt"
	"testing"

	"alpacapc-be/internal/entity"
)

func prod(id, name, description string, price int) entity.Product {
	return entity.Product{
		Id:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    1,
		SearchText:  name + description,
	}
}

func ids(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Id)
	}
	return out
}

func assertIds(t *testing.T, got []entity.Product, want ...string) {
	t.Helper()
	gotIds := ids(got)
	if len(gotIds) != len(want) {
		t.Fatalf("got %v, want %v", gotIds, want)
	}
	for i := range want {
		if gotIds[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIds, want)
		}
	}
}

func TestRankGamingPicksGPUStock(t *testing.T) {
	products := []entity.Product{
		prod("note-1", "中古ノートパソコン 事務向け", "Core i5 メモリ8GB", 30000),
		prod("desk-1", "ゲーミングデスクトップ", "GeForce RTX 3060 搭載", 150000),
	}

	message := "ゲームがしたい"
	intent := Classify(message, message)
	ranked := Rank(products, message, intent)

	assertIds(t, ranked, "desk-1")
}

func TestRankLightBudgetPrefersCheapest(t *testing.T) {
	products := []entity.Product{
		prod("desk-1", "ゲーミングデスクトップ", "GeForce RTX 3060 搭載", 150000),
		prod("note-1", "中古ノートパソコン 事務向け", "Core i5 メモリ8GB", 30000),
	}

	message := "ネットが見たいだけ、予算5万円"
	intent := Classify(message, message)
	ranked := Rank(products, message, intent)

	if len(ranked) != 2 {
		t.Fatalf("got %d candidates, want 2", len(ranked))
	}
	if ranked[0].Id != "note-1" {
		t.Errorf("cheapest product should rank first on a keyword tie, got %v", ids(ranked))
	}
}

func TestRankHeavyFallsBackWithoutGPUStock(t *testing.T) {
	products := []entity.Product{
		prod("a", "中古デスクトップ", "Core i3", 20000),
		prod("b", "中古デスクトップ 上位", "Core i7", 60000),
	}

	ranked := Rank(products, "ゲームがしたい", Intent{FormFactor: FormFactorEither, IsHeavyTask: true})

	// No discrete-GPU row exists, so the whole set comes back, strongest first.
	assertIds(t, ranked, "b", "a")
}

func TestRankFormFactorIsStrict(t *testing.T) {
	products := []entity.Product{
		prod("note-1", "ノートパソコン", "持ち運びに", 40000),
		prod("desk-1", "デスクトップ", "据え置き", 50000),
	}

	laptop := Rank(products, "", Intent{FormFactor: FormFactorLaptop})
	assertIds(t, laptop, "note-1")

	desktop := Rank(products, "", Intent{FormFactor: FormFactorDesktop})
	assertIds(t, desktop, "desk-1")

	// No matching stock is propagated as empty, never widened.
	onlyDesktops := []entity.Product{prod("desk-1", "デスクトップ", "据え置き", 50000)}
	if got := Rank(onlyDesktops, "", Intent{FormFactor: FormFactorLaptop}); len(got) != 0 {
		t.Errorf("expected empty result for laptop intent over desktop-only stock, got %v", ids(got))
	}
}

func TestRankLightKeywordScoreOrdersResults(t *testing.T) {
	products := []entity.Product{
		prod("a", "デスクトップ", "事務向け", 45000),
		prod("b", "ノートパソコン", "事務 エクセル ワード対応", 45000),
		prod("c", "ノートパソコン", "エクセル対応", 45000),
	}

	ranked := Rank(products, "エクセル ワード", Intent{FormFactor: FormFactorEither})

	// Two keyword hits beat one, which beats zero; prices are identical.
	assertIds(t, ranked, "b", "c", "a")
}

func TestRankBoundsCandidates(t *testing.T) {
	products := make([]entity.Product, 0, MaxCandidates+20)
	for i := 0; i < MaxCandidates+20; i++ {
		id := fmt.Sprintf("p-%03d", i)
		products = append(products, prod(id, "中古デスクトップ", "GeForce GTX 1650", 30000+i*100))
	}

	ranked := Rank(products, "ゲームがしたい", Intent{FormFactor: FormFactorEither, IsHeavyTask: true})

	if len(ranked) != MaxCandidates {
		t.Fatalf("got %d candidates, want %d", len(ranked), MaxCandidates)
	}
	// Price-descending within the heavy branch.
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Price < ranked[i].Price {
			t.Fatalf("candidates not ordered by price desc at %d: %d < %d", i, ranked[i-1].Price, ranked[i].Price)
		}
	}
}

// Hand-maintained exports can repeat an item code; each row still scores on
// its own search text.
func TestRankLightScoresDuplicateIdsIndependently(t *testing.T) {
	products := []entity.Product{
		prod("dup-1", "中古デスクトップ", "事務向け", 20000),
		prod("dup-1", "中古ノートパソコン", "エクセル ワード対応", 50000),
	}

	ranked := Rank(products, "エクセル ワード", Intent{FormFactor: FormFactorEither})

	if len(ranked) != 2 {
		t.Fatalf("got %d candidates, want 2", len(ranked))
	}
	if ranked[0].Name != "中古ノートパソコン" {
		t.Errorf("the two-keyword row must outrank its zero-keyword duplicate, got %q first", ranked[0].Name)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	products := []entity.Product{
		prod("a", "デスクトップ", "GeForce RTX", 90000),
		prod("b", "デスクトップ", "GeForce GTX", 120000),
	}

	Rank(products, "ゲームがしたい", Intent{FormFactor: FormFactorEither, IsHeavyTask: true})

	if products[0].Id != "a" || products[1].Id != "b" {
		t.Error("input slice order was mutated")
	}
}
