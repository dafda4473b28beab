package catalog

import (
	"sync/atomic"

	"alpacapc-be/internal/entity"
	"alpacapc-be/internal/pkg/logger"
)

type snapshot struct {
	products []entity.Product
}

// Store holds the in-stock catalog as an immutable snapshot shared by all
// requests. Reload builds a complete replacement and swaps it atomically, so
// concurrent readers never observe a partially-updated catalog.
type Store struct {
	path    string
	log     logger.ILogger
	current atomic.Pointer[snapshot]
}

// NewStore loads the catalog once at construction. A missing or unparseable
// source degrades to an empty catalog ("no candidates ever"), never an error.
func NewStore(path string, log logger.ILogger) *Store {
	s := &Store{path: path, log: log}
	s.current.Store(&snapshot{})

	if err := s.Reload(); err != nil {
		log.Warn("catalog", "Catalog load failed, starting with empty catalog", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
	return s
}

// Reload re-reads the source and swaps in the rebuilt snapshot. Only rows
// with Quantity > 0 are kept: out-of-stock records never reach the ranker.
func (s *Store) Reload() error {
	products, err := LoadCSV(s.path)
	if err != nil {
		return err
	}

	inStock := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Quantity > 0 {
			inStock = append(inStock, p)
		}
	}

	s.current.Store(&snapshot{products: inStock})
	s.log.Info("catalog", "Catalog loaded", map[string]interface{}{
		"path":     s.path,
		"rows":     len(products),
		"in_stock": len(inStock),
	})
	return nil
}

// Products returns the current snapshot's product slice. Callers must treat
// it as read-only; it is shared by every in-flight request.
func (s *Store) Products() []entity.Product {
	return s.current.Load().products
}

func (s *Store) Len() int {
	return len(s.current.Load().products)
}
