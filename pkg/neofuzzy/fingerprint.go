package neofuzzy

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// fingerprint digests a canonical parts list into a short stable hex string.
func fingerprint(kind string, parts ...string) string {
	joined := kind + "|" + strings.Join(parts, "|")
	digest := sha1.Sum([]byte(joined))
	return hex.EncodeToString(digest[:8])
}
