package app

import (
	"context"
	"fmt"

	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// fillChecksums prefetches the checksum of every git source lacking one,
// reusing the checksum cache and bounded by the configured concurrency.
func (a *App) fillChecksums(ctx context.Context, plan *domain.Plan, cfg domain.PrefetchConfig) error {
	pending := make(map[string][]*domain.Source)
	var keys []string
	for i := range plan.Packages {
		source := plan.Packages[i].Source
		if source == nil || source.Kind != domain.SourceGit || source.Checksum != "" {
			continue
		}
		if source.Rev == "" {
			err := zerr.Wrap(domain.ErrMissingRevision, "git source has no revision")
			err = zerr.With(err, "package", string(plan.Packages[i].ID))
			return zerr.With(err, "url", source.URL)
		}
		key := source.URL + "@" + source.Rev
		if _, ok := pending[key]; !ok {
			keys = append(keys, key)
		}
		pending[key] = append(pending[key], source)
	}
	if len(pending) == 0 {
		return nil
	}

	ctx, span := a.tracer.Start(ctx, "prefetch")
	defer span.End()
	span.SetAttribute("sources", len(keys))

	if cfg.CacheFile != "" {
		if err := a.checksums.Load(cfg.CacheFile); err != nil {
			return zerr.Wrap(err, "failed to load checksum cache")
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Concurrency, 1))

	for _, key := range keys {
		sources := pending[key]
		g.Go(func() error {
			checksum, err := a.checksum(ctx, key, sources[0].URL, sources[0].Rev)
			if err != nil {
				return err
			}
			for _, source := range sources {
				source.Checksum = checksum
			}
			return nil
		})
	}

	waitErr := g.Wait()
	if err := a.telemetry.Close(); err != nil && waitErr == nil {
		return zerr.Wrap(err, "failed to close telemetry")
	}
	if waitErr != nil {
		span.RecordError(waitErr)
		return zerr.Wrap(waitErr, "failed to prefetch git sources")
	}
	return nil
}

func (a *App) checksum(ctx context.Context, key, url, rev string) (string, error) {
	ctx, vertex := a.telemetry.Record(ctx, "prefetch "+key)

	if checksum, ok := a.checksums.Get(key); ok {
		vertex.Cached()
		return checksum, nil
	}

	a.logger.Debug("prefetching " + key)
	checksum, err := a.prefetcher.Prefetch(ctx, url, rev)
	if err != nil {
		vertex.Complete(err)
		return "", err
	}
	_, _ = fmt.Fprintln(vertex.Stdout(), checksum)
	vertex.Complete(nil)

	if err := a.checksums.Put(key, checksum); err != nil {
		return "", zerr.Wrap(err, "failed to store checksum")
	}
	return checksum, nil
}
