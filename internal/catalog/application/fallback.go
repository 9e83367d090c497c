package application

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/bloomshop/storefront/internal/catalog/domain"
)

//go:embed plants.json
var fallbackData []byte

var (
	fallbackOnce sync.Once
	fallback     []domain.Product
)

// FallbackCatalog is the bundled static catalog served when the backend
// is unreachable. The file is part of the build, so decoding cannot fail
// at runtime unless the build itself is broken.
func FallbackCatalog() []domain.Product {
	fallbackOnce.Do(func() {
		if err := json.Unmarshal(fallbackData, &fallback); err != nil {
			panic("catalog: bundled plants.json is invalid: " + err.Error())
		}
	})
	out := make([]domain.Product, len(fallback))
	copy(out, fallback)
	return out
}
