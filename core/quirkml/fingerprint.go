package quirkml

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/hstranslate/quirk/core/quirk"
)

// Fingerprint returns the hex BLAKE3-256 digest of the canonical compact
// serialization of a quirk list. Structurally equal collections share a
// fingerprint regardless of the whitespace of the documents they were
// parsed from.
func Fingerprint(quirks []*quirk.Quirk) (string, error) {
	data, err := Serialize(quirks, SerializeOptions{Compact: true})
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
