// Package app implements the application layer for nixcrate.
package app

import (
	"context"
	"encoding/json"
	"io"

	"go.trai.ch/nixcrate/internal/build"
	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/nixcrate/internal/engine/optionality"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	requests     ports.RequestLoader
	resolver     ports.FeatureResolver
	conditions   *optionality.Engine
	manifests    ports.ManifestReader
	prefetcher   ports.Prefetcher
	checksums    ports.ChecksumCache
	writer       ports.PlanWriter
	telemetry    ports.Telemetry
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	requests ports.RequestLoader,
	resolver ports.FeatureResolver,
	conditions *optionality.Engine,
	manifests ports.ManifestReader,
	prefetcher ports.Prefetcher,
	checksums ports.ChecksumCache,
	writer ports.PlanWriter,
	telemetry ports.Telemetry,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		requests:     requests,
		resolver:     resolver,
		conditions:   conditions,
		manifests:    manifests,
		prefetcher:   prefetcher,
		checksums:    checksums,
		writer:       writer,
		telemetry:    telemetry,
		tracer:       tracer,
		logger:       logger,
	}
}

// Options are the settings shared by every command.
type Options struct {
	// ConfigPath is the nixcrate.yaml to load.
	ConfigPath string
	// Request overrides the configured request document.
	Request string
}

// PlanOptions control plan generation.
type PlanOptions struct {
	Options
	// Output overrides the configured plan path.
	Output string
	// Format overrides the configured plan format.
	Format string
	// Stdout writes the plan to Writer instead of the output file.
	Stdout bool
	// Force replaces plans written by incompatible versions.
	Force  bool
	Writer io.Writer
}

// Plan resolves the request, computes conditions, fills in checksums and
// writes the resulting plan.
func (a *App) Plan(ctx context.Context, opts PlanOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "plan")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	cfg, req, err := a.load(opts.Options)
	if err != nil {
		return err
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.Format != "" {
		cfg.Format = domain.Format(opts.Format)
	}

	result, err := a.compute(ctx, req)
	if err != nil {
		return err
	}

	plan := BuildPlan(req, result, cfg.RootFeaturesVar)
	plan.Version = build.Version
	span.SetAttribute("packages", len(plan.Packages))

	if cfg.Manifest != "" {
		profiles, err := a.manifests.ReadProfiles(cfg.Manifest)
		if err != nil {
			return zerr.Wrap(err, "failed to read workspace profiles")
		}
		plan.Profiles = profiles
	}

	if err := a.fillChecksums(ctx, plan, cfg.Prefetch); err != nil {
		return err
	}

	data, err := Encode(plan, cfg.Format)
	if err != nil {
		return err
	}

	if opts.Stdout {
		if _, err := opts.Writer.Write(data); err != nil {
			return zerr.Wrap(err, "failed to write plan")
		}
		return nil
	}

	changed, err := a.writer.Write(cfg.Output, data, opts.Force)
	if err != nil {
		return zerr.Wrap(err, "failed to write plan")
	}
	span.SetAttribute("changed", changed)
	if changed {
		a.logger.Info("wrote " + cfg.Output)
	} else {
		a.logger.Info(cfg.Output + " is up to date")
	}
	return nil
}

// Resolve runs a single resolution of the request as written.
func (a *App) Resolve(_ context.Context, opts Options) (*domain.Resolution, error) {
	_, req, err := a.load(opts)
	if err != nil {
		return nil, err
	}
	res, err := a.resolver.Resolve(req)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve request")
	}
	return res, nil
}

// Conditions computes the condition of every feature and dependency edge.
func (a *App) Conditions(ctx context.Context, opts Options) ([]ConditionRow, error) {
	cfg, req, err := a.load(opts)
	if err != nil {
		return nil, err
	}
	result, err := a.compute(ctx, req)
	if err != nil {
		return nil, err
	}
	return ConditionTable(BuildPlan(req, result, cfg.RootFeaturesVar)), nil
}

func (a *App) compute(ctx context.Context, req *domain.ResolveRequest) (*optionality.Result, error) {
	_, span := a.tracer.Start(ctx, "conditions")
	defer span.End()

	result, err := a.conditions.Compute(req)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to compute conditions")
	}
	span.SetAttribute("roots", len(result.Roots))
	span.SetAttribute("packages", len(result.Packages))
	return result, nil
}

func (a *App) load(opts Options) (*domain.Config, *domain.ResolveRequest, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.DefaultConfigFile
	}
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	if cfg.LogLevel != "" {
		a.logger.SetLevel(domain.ParseLogLevel(cfg.LogLevel))
	}
	if opts.Request != "" {
		cfg.Request = opts.Request
	}

	req, err := a.requests.Load(cfg.Request)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load resolve request")
	}
	return cfg, req, nil
}

// Encode serializes plan in format.
func Encode(plan *domain.Plan, format domain.Format) ([]byte, error) {
	switch format {
	case domain.FormatJSON:
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode plan")
		}
		return append(data, '\n'), nil
	case domain.FormatYAML:
		data, err := yaml.Marshal(plan)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode plan")
		}
		return data, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "cannot encode plan"), "format", string(format))
	}
}
