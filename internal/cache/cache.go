// Package cache memoizes pipeline results by document content so a
// long-running batch service does not re-process identical documents.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/openfnol/fnoltriage/internal/model"
)

// Cache defines the interface for result caching
type Cache interface {
	Get(key string) (*model.Result, bool)
	Set(key string, result *model.Result)
	Clear()
}

// Key derives a cache key from raw document text
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "fnoltriage:v1:" + hex.EncodeToString(hash[:])
}
