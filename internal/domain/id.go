package domain

import (
	"crypto/sha1"
	"encoding/hex"
)

// MakeID derives the product id from its canonical URL: the lowercase
// hex SHA-1 digest of the URL bytes. Records sharing a URL share an id,
// so the store's on_conflict=id upsert updates instead of duplicating.
// SHA-1 keeps ids compatible with rows written by earlier versions of
// the tool.
func MakeID(url string) string {
	sum := sha1.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}
