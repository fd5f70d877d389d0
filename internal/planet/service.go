package planet

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"planet-builder/internal/classification"
	"planet-builder/internal/habitability"
	"planet-builder/internal/preset"
	"planet-builder/internal/shared/errors"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "planet-builder/internal/planet"

type designStore interface {
	Create(ctx context.Context, d *Design) error
	GetByID(ctx context.Context, id uuid.UUID) (*Design, error)
	ListByOwner(ctx context.Context, ownerID int) ([]Design, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	classifier  *classification.Classifier
	cache       Cache
	repo        designStore
	names       *bluemonday.Policy
	tracer      trace.Tracer
	assessments metric.Int64Counter
	logger      *slog.Logger
	now         func() time.Time
}

// ServiceOption customises a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithTracerProvider records assessment spans with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider records assessment metrics with mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.meterProvider = mp
	}
}

// NewService wires the assessment engine. cache may be nil, in which case every
// assessment is computed.
func NewService(classifier *classification.Classifier, cache Cache, repo designStore, logger *slog.Logger, opts ...ServiceOption) *Service {
	logger.Debug("Initializing planet service", "cache_enabled", cache != nil)

	o := serviceOptions{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	assessments, err := o.meterProvider.Meter(instrumentationName).Int64Counter(
		"planet.assessments",
		metric.WithDescription("Count of planet assessments served"),
	)
	if err != nil {
		logger.Warn("Unable to register assessment metric", "error", err)
	}

	return &Service{
		classifier:  classifier,
		cache:       cache,
		repo:        repo,
		names:       bluemonday.StrictPolicy(),
		tracer:      o.tracerProvider.Tracer(instrumentationName),
		assessments: assessments,
		logger:      logger,
		now:         time.Now,
	}
}

// Assess validates cfg and returns its classification, explanation and habitability.
func (s *Service) Assess(ctx context.Context, cfg Configuration) (*Assessment, error) {
	ctx, span := s.tracer.Start(ctx, "planet.Assess")
	defer span.End()

	logger := s.logger.With("component", "planet_service", "operation", "assess")

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	key, err := CacheKey(cfg)
	if err != nil {
		return nil, errors.WrapInternal("failed to derive cache key", err)
	}

	if cached := s.cached(ctx, logger, key); cached != nil {
		s.record(ctx, span, cached, true)
		return cached, nil
	}

	a := s.evaluate(cfg)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, a); err != nil {
			logger.Warn("Failed to cache assessment", "error", err, "key", key)
		}
	}

	s.record(ctx, span, a, false)
	logger.Debug("Planet assessed",
		"planet_type", a.Classification.Type,
		"total_score", a.Habitability.TotalScore)
	return a, nil
}

func (s *Service) cached(ctx context.Context, logger *slog.Logger, key string) *Assessment {
	if s.cache == nil {
		return nil
	}
	a, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Assessment cache unavailable", "error", err, "key", key)
		return nil
	}
	return a
}

func (s *Service) evaluate(cfg Configuration) *Assessment {
	c, explanation := s.classifier.Assess(cfg)
	return &Assessment{
		Configuration:  cfg,
		Classification: c,
		Explanation:    explanation,
		Habitability:   habitability.Score(c, cfg.Composition, cfg.RotationPeriodHours),
	}
}

func (s *Service) record(ctx context.Context, span trace.Span, a *Assessment, cacheHit bool) {
	attrs := []attribute.KeyValue{
		attribute.String("planet.type", string(a.Classification.Type)),
		attribute.Bool("planet.cache_hit", cacheHit),
	}
	span.SetAttributes(append(attrs, attribute.Int("planet.total_score", a.Habitability.TotalScore))...)
	if s.assessments != nil {
		s.assessments.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

func (s *Service) AssessPreset(ctx context.Context, id string) (*Assessment, error) {
	p, err := preset.ByID(id)
	if err != nil {
		return nil, errors.NotFoundf("preset %q not found", id)
	}
	return s.Assess(ctx, p.Parameters())
}

func (s *Service) SaveDesign(ctx context.Context, ownerID int, req CreateDesignRequest) (*DesignAssessment, error) {
	logger := s.logger.With("component", "planet_service", "operation", "save_design", "owner_id", ownerID)

	name, err := validateName(html.UnescapeString(s.names.Sanitize(req.Name)))
	if err != nil {
		return nil, err
	}

	a, err := s.Assess(ctx, req.Configuration)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	d := &Design{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		Configuration: req.Configuration,
		PlanetType:    a.Classification.Type,
		TotalScore:    a.Habitability.TotalScore,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save design: %w", err)
	}

	logger.Info("Design saved", "design_id", d.ID, "planet_type", d.PlanetType)
	return &DesignAssessment{Design: *d, Assessment: a}, nil
}

// GetDesign returns the owner's design with a freshly computed assessment.
func (s *Service) GetDesign(ctx context.Context, ownerID int, id uuid.UUID) (*DesignAssessment, error) {
	d, err := s.ownedDesign(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	a, err := s.Assess(ctx, d.Configuration)
	if err != nil {
		return nil, fmt.Errorf("failed to assess stored design %s: %w", id, err)
	}
	return &DesignAssessment{Design: *d, Assessment: a}, nil
}

func (s *Service) ListDesigns(ctx context.Context, ownerID int) ([]Design, error) {
	designs, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if designs == nil {
		designs = []Design{}
	}
	return designs, nil
}

func (s *Service) DeleteDesign(ctx context.Context, ownerID int, id uuid.UUID) error {
	if _, err := s.ownedDesign(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Design deleted", "component", "planet_service", "design_id", id, "owner_id", ownerID)
	return nil
}

func (s *Service) ownedDesign(ctx context.Context, ownerID int, id uuid.UUID) (*Design, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.OwnerID != ownerID {
		return nil, errors.Forbidden("design belongs to another designer")
	}
	return d, nil
}
