package usecase

import (
	"time"

	"actionsense/internal/actionsense"
	"actionsense/internal/actionsense/detector"
	"actionsense/internal/actionsense/repository"
	"actionsense/pkg/datemath"
	"actionsense/pkg/log"
)

const (
	maxTextRunes  = 2000
	maxTitleRunes = 200

	llmMinConfidence      = 0.85
	llmOnlyConfidence     = 0.8
	defaultTitle          = "제목 없음"
	autoCreatedFormat     = "고신뢰 자동생성: “%s”"
	acceptedPreviewFormat = "채팅에서 자동 생성됨: “%s”"
)

// Options tunes when tasks are created automatically and when the LLM is asked.
type Options struct {
	AutoRegisterThreshold float64
	LLMFallbackThreshold  float64
	LLMFallbackEnabled    bool
}

// DefaultOptions matches the thresholds the product ships with.
func DefaultOptions() Options {
	return Options{
		AutoRegisterThreshold: 0.95,
		LLMFallbackThreshold:  0.8,
		LLMFallbackEnabled:    true,
	}
}

// implUseCase is the private implementation of actionsense.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	detector  *detector.Detector
	resolver  *datemath.Resolver
	extractor actionsense.ActionItemExtractor
	opts      Options
	now       func() time.Time
}

// New creates a new actionsense UseCase. extractor may be nil, which disables
// the LLM fallback. A nil clock uses time.Now.
func New(
	l log.Logger,
	repo repository.Repository,
	det *detector.Detector,
	resolver *datemath.Resolver,
	extractor actionsense.ActionItemExtractor,
	opts Options,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		detector:  det,
		resolver:  resolver,
		extractor: extractor,
		opts:      opts,
		now:       now,
	}
}

func (uc *implUseCase) llmEnabled() bool {
	return uc.opts.LLMFallbackEnabled && uc.extractor != nil
}
