package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"alpacapc-be/internal/entity"
)

// Column headers of the retailer's item export. The export tool writes either
// UTF-8 or Shift-JIS depending on which machine ran it, hence the fallback.
const (
	colItemCode     = "商品管理番号"
	colName         = "商品名"
	colDescription  = "PC用メイン商品説明文"
	colPrice        = "販売価格"
	colQuantity     = "在庫数"
	colCategoryPath = "表示先カテゴリ"
	colProductURL   = "商品ページURL"
)

// LoadCSV reads the item export at path and returns normalized products.
// Rows are coerced, never rejected: a bad price or quantity becomes 0.
// The quantity>0 eligibility cut happens in the Store, not here.
func LoadCSV(path string) ([]entity.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	rows, err := parseRows(raw)
	if err != nil {
		// Try Shift-JIS before giving up
		decoded, derr := io.ReadAll(transform.NewReader(bytes.NewReader(raw), japanese.ShiftJIS.NewDecoder()))
		if derr != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		rows, err = parseRows(decoded)
		if err != nil {
			return nil, fmt.Errorf("parse catalog (shift-jis fallback): %w", err)
		}
	}

	return buildProducts(rows), nil
}

func parseRows(data []byte) ([][]string, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("not valid utf-8")
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // exports sometimes have ragged rows
	reader.LazyQuotes = true
	return reader.ReadAll()
}

func buildProducts(rows [][]string) []entity.Product {
	if len(rows) < 2 {
		return nil
	}

	idx := headerIndex(rows[0])
	products := make([]entity.Product, 0, len(rows)-1)

	for _, row := range rows[1:] {
		code := field(row, col(idx, colItemCode))
		name := field(row, col(idx, colName))
		description := field(row, col(idx, colDescription))
		if name == "" && description == "" {
			continue
		}

		id := code
		if id == "" {
			id = uuid.NewString()
		}

		products = append(products, entity.Product{
			Id:           id,
			Name:         name,
			Description:  description,
			Price:        parseNonNegativeInt(field(row, col(idx, colPrice))),
			Quantity:     parseNonNegativeInt(field(row, col(idx, colQuantity))),
			CategoryPath: field(row, col(idx, colCategoryPath)),
			ProductURL:   field(row, col(idx, colProductURL)),
			ImageURL:     ExtractImageURL(description, code),
			SearchText:   name + description,
		})
	}

	return products
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

// col maps a header name to its index, -1 when the column is absent.
func col(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}

// field returns row[i], tolerating missing columns and ragged rows.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseNonNegativeInt coerces a numeric field. Invalid, missing, or negative
// values become 0 so a bad export can never crash the ranker.
func parseNonNegativeInt(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "円")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
