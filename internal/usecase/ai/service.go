package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
	"github.com/johnquangdev/hcp-crm/internal/observability/metrics"
	pkgai "github.com/johnquangdev/hcp-crm/pkg/ai"
)

var (
	// ErrEmptyInput is returned for empty or whitespace-only text; the model is not called
	ErrEmptyInput = errors.New("input text cannot be empty")
	// ErrModelUnavailable is returned when the model client failed to initialize
	ErrModelUnavailable = errors.New("language model is not available")
	// ErrExtractionFailed wraps every model or parse failure
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrModelCall and ErrParse tell the two failure kinds apart in logs and metrics
	ErrModelCall = errors.New("model call failed")
	ErrParse     = errors.New("model output does not match the extraction schema")
)

// ChatModel is the language model collaborator
type ChatModel interface {
	Complete(ctx context.Context, messages []pkgai.Message) (string, error)
}

// Service defines AI extraction methods
type Service interface {
	// ExtractInteraction derives a partial interaction record from free text
	ExtractInteraction(ctx context.Context, text string) (*entities.ExtractedInfo, error)

	// Available reports whether the model client initialized
	Available() error
}

type extractionService struct {
	model    ChatModel
	modelErr error
	parser   *Parser
	metrics  *metrics.CRMMetrics
	logger   *zap.Logger
}

// NewExtractionService constructs the extraction service. A nil model or a
// non-nil modelErr makes every extraction fail with ErrModelUnavailable.
func NewExtractionService(model ChatModel, modelErr error, m *metrics.CRMMetrics, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == nil && modelErr == nil {
		modelErr = errors.New("model client not configured")
	}
	return &extractionService{
		model:    model,
		modelErr: modelErr,
		parser:   NewParser(),
		metrics:  m,
		logger:   logger,
	}
}

func (s *extractionService) Available() error {
	if s.modelErr != nil {
		return fmt.Errorf("%w: %w", ErrModelUnavailable, s.modelErr)
	}
	return nil
}

func (s *extractionService) ExtractInteraction(ctx context.Context, text string) (*entities.ExtractedInfo, error) {
	if strings.TrimSpace(text) == "" {
		s.metrics.ObserveExtraction(metrics.OutcomeEmptyInput)
		return nil, ErrEmptyInput
	}

	if err := s.Available(); err != nil {
		s.metrics.ObserveExtraction(metrics.OutcomeUnavailable)
		s.logger.Error("extraction skipped",
			zap.String("kind", metrics.OutcomeUnavailable),
			zap.Error(err),
		)
		return nil, err
	}

	start := time.Now()
	raw, err := s.model.Complete(ctx, BuildExtractionPrompt(text))
	s.metrics.ObserveExtractionLatency(time.Since(start).Seconds())
	if err != nil {
		s.metrics.ObserveExtraction(metrics.OutcomeModelCall)
		s.logger.Error("extraction failed",
			zap.String("kind", metrics.OutcomeModelCall),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w: %w", ErrExtractionFailed, ErrModelCall, err)
	}

	info, err := s.parser.ParseExtraction(raw)
	if err != nil {
		s.metrics.ObserveExtraction(metrics.OutcomeParse)
		s.logger.Error("extraction failed",
			zap.String("kind", metrics.OutcomeParse),
			zap.String("raw_output", raw),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w: %w", ErrExtractionFailed, ErrParse, err)
	}

	s.metrics.ObserveExtraction(metrics.OutcomeSuccess)
	s.logger.Info("extraction completed",
		zap.Bool("hcp_name_found", info.HCPName != nil),
		zap.Duration("latency", time.Since(start)),
	)
	return info, nil
}
