// Package nix implements source prefetching through the Nix tooling.
package nix

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCommand is the program used to prefetch git sources.
const DefaultCommand = "nix-prefetch-git"

var _ ports.Prefetcher = (*Prefetcher)(nil)

// Prefetcher implements ports.Prefetcher using nix-prefetch-git.
type Prefetcher struct {
	command string
}

// NewPrefetcher creates a Prefetcher running command. An empty command
// selects DefaultCommand.
func NewPrefetcher(command string) *Prefetcher {
	if command == "" {
		command = DefaultCommand
	}
	return &Prefetcher{command: command}
}

// prefetchResult is the subset of nix-prefetch-git's JSON report we read.
type prefetchResult struct {
	SHA256 string `json:"sha256"`
	Hash   string `json:"hash"`
}

// Prefetch fetches the git tree at url and rev and returns its SRI sha256.
func (p *Prefetcher) Prefetch(ctx context.Context, url, rev string) (string, error) {
	if rev == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrMissingRevision, "git source has no revision"), "url", url)
	}

	//nolint:gosec // url and rev come from the lock graph
	cmd := exec.CommandContext(ctx, p.command, "--quiet", "--url", url, "--rev", rev)

	output, err := cmd.Output()
	if err != nil {
		prefetchErr := zerr.Wrap(domain.WithCause(domain.ErrChecksumFailed, err), "nix-prefetch-git failed")
		prefetchErr = zerr.With(prefetchErr, "url", url)
		prefetchErr = zerr.With(prefetchErr, "rev", rev)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", zerr.With(prefetchErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", prefetchErr
	}

	return parsePrefetchOutput(output, url, rev)
}

func parsePrefetchOutput(output []byte, url, rev string) (string, error) {
	var result prefetchResult
	if err := json.Unmarshal(output, &result); err != nil {
		parseErr := zerr.Wrap(domain.WithCause(domain.ErrChecksumFailed, err), "failed to parse nix-prefetch-git output")
		parseErr = zerr.With(parseErr, "url", url)
		return "", zerr.With(parseErr, "rev", rev)
	}

	digest := result.Hash
	if digest == "" {
		digest = result.SHA256
	}
	if digest == "" {
		emptyErr := zerr.With(zerr.Wrap(domain.ErrChecksumFailed, "no sha256 in nix-prefetch-git output"), "url", url)
		return "", zerr.With(emptyErr, "rev", rev)
	}

	sri, err := NormalizeSHA256(digest)
	if err != nil {
		return "", zerr.With(zerr.With(err, "url", url), "rev", rev)
	}
	return sri, nil
}
