package chartcheck

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngBase64 encodes the PNG signature plus payload as base64.
func pngBase64(payload string) string {
	data := append([]byte{}, pngSignature...)
	data = append(data, payload...)
	return base64.StdEncoding.EncodeToString(data)
}

// writeAsset writes content at rel under a fresh temp root and returns the root.
func writeAsset(t *testing.T, rel, content string) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestCheckAsset(t *testing.T) {
	const rel = "assets/net-per-deal.b64"

	tests := []struct {
		name    string
		content string
		wantSub string // empty = no failure expected
	}{
		{
			name:    "valid png asset",
			content: pngBase64("chart-bytes"),
			wantSub: "",
		},
		{
			name:    "signature-only asset is large enough",
			content: pngBase64(""),
			wantSub: "",
		},
		{
			name:    "whitespace-wrapped base64 decodes",
			content: " \t" + strings.Join(strings.Split(pngBase64("chart-bytes"), ""), "\n") + "\n",
			wantSub: "",
		},
		{
			name:    "empty file",
			content: "",
			wantSub: "is empty",
		},
		{
			name:    "whitespace-only file",
			content: " \n\t\r\n",
			wantSub: "is empty",
		},
		{
			name:    "invalid base64",
			content: "!!!not-base64!!!",
			wantSub: "is not valid base64",
		},
		{
			name:    "decodes but too small",
			content: base64.StdEncoding.EncodeToString([]byte{0x89, 0x50}),
			wantSub: "unexpectedly small",
		},
		{
			name:    "decodes but not a png",
			content: base64.StdEncoding.EncodeToString([]byte("GIF89a-not-a-png")),
			wantSub: "does not appear to be a PNG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeAsset(t, rel, tt.content)
			failures := checkAsset(root, rel, "net per deal vs commission")

			if tt.wantSub == "" {
				if len(failures) != 0 {
					t.Fatalf("unexpected failures: %v", failures)
				}
				return
			}
			if len(failures) != 1 {
				t.Fatalf("got %d failures %v, want 1", len(failures), failures)
			}
			if !strings.Contains(failures[0], tt.wantSub) {
				t.Errorf("failure %q does not contain %q", failures[0], tt.wantSub)
			}
			if !strings.Contains(failures[0], rel) {
				t.Errorf("failure %q does not name the asset path %q", failures[0], rel)
			}
		})
	}
}

func TestCheckAssetMissingFile(t *testing.T) {
	root := t.TempDir()
	failures := checkAsset(root, "assets/absent.b64", "net per deal vs commission")
	if len(failures) != 1 {
		t.Fatalf("got %d failures %v, want 1", len(failures), failures)
	}
	if !strings.Contains(failures[0], "does not exist") {
		t.Errorf("failure %q does not mention a missing file", failures[0])
	}
}

func TestCheckAssetDecodeErrorCarriesCause(t *testing.T) {
	root := writeAsset(t, "assets/bad.b64", "%%%%")
	failures := checkAsset(root, "assets/bad.b64", "x")
	if len(failures) != 1 {
		t.Fatalf("got %d failures %v, want 1", len(failures), failures)
	}
	// The base64 library's own message must survive into the diagnostic.
	if !strings.Contains(failures[0], "illegal base64 data") {
		t.Errorf("failure %q does not carry the decoder error", failures[0])
	}
}
