package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const sampleCSV = "商品管理番号,商品名,PC用メイン商品説明文,販売価格,在庫数,表示先カテゴリ,商品ページURL\n" +
	"note-1,中古ノートパソコン,Core i5 メモリ8GB,\"48,000\",3,ノートPC,https://item.rakuten.co.jp/alpacapc/note-1/\n" +
	"desk-1,ゲーミングデスクトップ,GeForce RTX 3060 搭載,150000円,0,デスクトップ,https://item.rakuten.co.jp/alpacapc/desk-1/\n" +
	"bad-1,値段が壊れた商品,説明,不明,-2,その他,\n" +
	",,,,,,\n"

func writeCatalog(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "item_data.csv")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSVUTF8(t *testing.T) {
	products, err := LoadCSV(writeCatalog(t, []byte(sampleCSV)))
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3 (all-empty row skipped)", len(products))
	}

	note := products[0]
	if note.Id != "note-1" {
		t.Errorf("Id = %q", note.Id)
	}
	if note.Price != 48000 {
		t.Errorf("Price = %d, want 48000 (comma stripped)", note.Price)
	}
	if note.Quantity != 3 {
		t.Errorf("Quantity = %d", note.Quantity)
	}
	if note.SearchText != note.Name+note.Description {
		t.Errorf("SearchText = %q, want name+description", note.SearchText)
	}

	desk := products[1]
	if desk.Price != 150000 {
		t.Errorf("Price = %d, want 150000 (yen suffix stripped)", desk.Price)
	}

	bad := products[2]
	if bad.Price != 0 || bad.Quantity != 0 {
		t.Errorf("bad numeric fields should coerce to 0, got price=%d quantity=%d", bad.Price, bad.Quantity)
	}
}

func TestLoadCSVShiftJISFallback(t *testing.T) {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}

	products, err := LoadCSV(writeCatalog(t, encoded))
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}
	if products[0].Name != "中古ノートパソコン" {
		t.Errorf("Name = %q, shift-jis text not decoded", products[0].Name)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	products, err := LoadCSV(writeCatalog(t, []byte("商品管理番号,商品名\n")))
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Errorf("got %d products, want 0", len(products))
	}
}

func TestLoadCSVGeneratesIdWhenCodeMissing(t *testing.T) {
	csv := "商品管理番号,商品名\n,名前だけの商品\n"
	products, err := LoadCSV(writeCatalog(t, []byte(csv)))
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Id == "" {
		t.Error("missing item code should get a generated id")
	}
}

func TestParseNonNegativeInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"48,000", 48000},
		{"150000円", 150000},
		{"-5", 0},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseNonNegativeInt(tt.input); got != tt.want {
			t.Errorf("parseNonNegativeInt(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
