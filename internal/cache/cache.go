package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/nickbeaird/recordexpungPDX/internal/classify"
	"github.com/nickbeaird/recordexpungPDX/internal/model"
)

// Cache memoizes charge classifications
type Cache interface {
	Get(key string) (classify.Classification, bool)
	Set(key string, value classify.Classification)
	Delete(key string)
	Clear()
	Len() int
}

// CacheKey generates a cache key from the charge fields classification reads
// and the fingerprint of the statute table that classified it
func CacheKey(table string, charge model.Charge) string {
	fields := []string{
		table,
		strings.TrimSpace(charge.Statute),
		strings.ToLower(strings.TrimSpace(charge.Level)),
		strings.ToLower(strings.TrimSpace(charge.Name)),
		charge.Ruling().String(),
	}
	hash := sha256.Sum256([]byte(strings.Join(fields, "\x00")))
	return "expunge:v1:" + hex.EncodeToString(hash[:])
}
