package reporter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wolfeidau/humanhash"
)

// HashToken is the output path placeholder replaced by a digest of the
// rendered content, making the path unique to the exact report written.
const HashToken = "[hash]"

const humanHashWords = 4

// HashContent computes the digest of the rendered report, in the given
// style. The hex style is a base-16 sha-256 digest; the human style encodes
// the same digest as memorable words.
func HashContent(content, style string) (string, error) {
	sum := sha256.Sum256([]byte(content))

	if style == HashStyleHuman {
		digest, err := humanhash.Humanize(sum[:], humanHashWords)
		if err != nil {
			return "", fmt.Errorf("can't humanize content hash: %w", err)
		}

		return digest, nil
	}

	return hex.EncodeToString(sum[:]), nil
}

// write persists the rendered report to the configured destination and
// returns the resolved path. Persistence is best effort: every filesystem
// fault is logged and swallowed, and an empty path is returned instead.
func (g *Generator) write(content string) string {
	path := g.Options.OutputPath
	if path == "" {
		return ""
	}

	if strings.Contains(path, HashToken) {
		digest, err := HashContent(content, g.Options.HashStyle)
		if err != nil {
			g.Log.Errorf("can't resolve output path %s: %v", path, err)
			return ""
		}
		path = strings.Replace(path, HashToken, digest, 1)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			g.Log.Errorf("can't create report directory %s: %v", dir, err)
			return ""
		}
	}

	// Remove any stale report first so the destination holds exactly this
	// run's output, never a merge with a previous one.
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			g.Log.Errorf("can't remove stale report %s: %v", path, err)
			return ""
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec
		g.Log.Errorf("can't write JUnit report to file %s: %v", path, err)
		return ""
	}

	g.Log.Infof("JUnit report written to %s", path)

	return path
}
