package nix

import (
	"strings"

	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/zerr"
	"zombiezen.com/go/nix"
)

// NormalizeSHA256 converts a sha256 digest in base16, nix base32, base64 or
// SRI form into SRI form.
func NormalizeSHA256(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "sha256-") && !strings.HasPrefix(s, "sha256:") {
		s = "sha256:" + s
	}
	h, err := nix.ParseHash(s)
	if err != nil {
		return "", zerr.With(domain.WithCause(domain.ErrChecksumFailed, err), "hash", s)
	}
	if h.Type() != nix.SHA256 {
		return "", zerr.With(zerr.Wrap(domain.ErrChecksumFailed, "not a sha256 hash"), "hash", s)
	}
	return h.SRI(), nil
}
