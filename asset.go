package chartcheck

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-chartcheck/internal/fileutil"
)

// pngSignature is the canonical 8-byte PNG file signature.
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// checkAsset validates one base64 asset file against the PNG signature.
// Checks stop at the first problem for this file; the returned failures are
// appended to the report by the caller.
func checkAsset(root, relPath, caption string) []string {
	path := filepath.Join(root, relPath)
	if !fileutil.FileExists(path) {
		return []string{fmt.Sprintf("%q: asset file %s does not exist", caption, relPath)}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the compiled-in expectation table
	if err != nil {
		return []string{fmt.Sprintf("%q: reading asset file %s: %v", caption, relPath, err)}
	}

	// Asset files are written with line wrapping; decode the bare payload.
	encoded := fileutil.StripSpace(string(data))
	if encoded == "" {
		return []string{fmt.Sprintf("%q: asset file %s is empty", caption, relPath)}
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return []string{fmt.Sprintf("%q: asset file %s is not valid base64: %v", caption, relPath, err)}
	}

	if len(decoded) < len(pngSignature) {
		return []string{fmt.Sprintf("%q: decoded asset %s is unexpectedly small (%d bytes)", caption, relPath, len(decoded))}
	}
	if !bytes.Equal(decoded[:len(pngSignature)], pngSignature) {
		return []string{fmt.Sprintf("%q: decoded asset %s does not appear to be a PNG", caption, relPath)}
	}
	return nil
}
