package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"actionsense/internal/actionsense"
	"actionsense/internal/actionsense/detector"
	"actionsense/internal/model"
	"actionsense/pkg/datemath"
	"actionsense/pkg/gemini"
)

// Analyze runs the rule detector on a message, auto-registers confident hits
// and asks the LLM when rules are unsure or find nothing.
func (uc *implUseCase) Analyze(ctx context.Context, input actionsense.AnalyzeInput) (actionsense.AnalyzeOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return actionsense.AnalyzeOutput{}, actionsense.ErrEmptyText
	}
	if utf8.RuneCountInString(text) > maxTextRunes {
		return actionsense.AnalyzeOutput{}, actionsense.ErrTextTooLong
	}

	ref := input.Reference
	if ref.IsZero() {
		ref = uc.now()
	}

	rb := uc.detector.Analyze(text, ref)
	if !rb.IsAction {
		return uc.analyzeWithLLM(ctx, text, ref)
	}

	out := actionsense.AnalyzeOutput{
		IsAction:    true,
		Suggestions: []actionsense.Suggestion{newSuggestion(rb.Extracted, rb.Confidence, model.SourceRule)},
	}

	if rb.Confidence >= uc.opts.AutoRegisterThreshold {
		created, err := uc.CreateTask(ctx, actionsense.CreateTaskInput{
			Title:       rb.Extracted.Title,
			Description: fmt.Sprintf(autoCreatedFormat, rb.Extracted.Title),
			AssignedTo:  rb.Extracted.AssignedTo,
			DueDate:     rb.Extracted.DueDate,
			Priority:    rb.Extracted.Priority,
			Tags:        rb.Extracted.Tags,
			Channel:     input.Channel,
			Source:      model.SourceRule,
		})
		if err != nil {
			uc.l.Errorf(ctx, "actionsense.usecase.Analyze.CreateTask: %v", err)
			return actionsense.AnalyzeOutput{}, err
		}
		uc.l.Infof(ctx, "actionsense: auto-registered task %s (confidence %.2f)", created.Task.ID, rb.Confidence)
		out.AutoCreated = &created.Task
		return out, nil
	}

	if !uc.llmEnabled() || rb.Confidence >= uc.opts.LLMFallbackThreshold {
		return out, nil
	}

	items, err := uc.extractor.ExtractActionItems(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "actionsense.usecase.Analyze: llm refinement failed, keeping rule suggestion: %v", err)
		return out, nil
	}
	if len(items) == 0 {
		return out, nil
	}

	merged := uc.mergeLLM(rb.Extracted, items[0], ref)
	out.Suggestions = append(out.Suggestions,
		newSuggestion(merged, max(rb.Confidence, llmMinConfidence), model.SourceLLM))
	return out, nil
}

func (uc *implUseCase) analyzeWithLLM(ctx context.Context, text string, ref time.Time) (actionsense.AnalyzeOutput, error) {
	if !uc.llmEnabled() {
		return actionsense.AnalyzeOutput{}, nil
	}

	items, err := uc.extractor.ExtractActionItems(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "actionsense.usecase.Analyze: llm detection failed: %v", err)
		return actionsense.AnalyzeOutput{}, nil
	}
	if len(items) == 0 {
		return actionsense.AnalyzeOutput{}, nil
	}

	item := items[0]
	ex := detector.Extracted{
		Title:    uc.detector.NormalizeTitle(text),
		Priority: model.PriorityNormal,
	}
	if title := uc.detector.NormalizeTitle(item.Text); title != "" {
		ex.Title = title
	}
	if item.AssignedTo != nil {
		ex.AssignedTo = *item.AssignedTo
	}
	if item.DueDate != nil {
		ex.DueDate, ex.DueRule = uc.normalizeDue(*item.DueDate, ref)
	}

	return actionsense.AnalyzeOutput{
		IsAction:    true,
		Suggestions: []actionsense.Suggestion{newSuggestion(ex, llmOnlyConfidence, model.SourceLLM)},
	}, nil
}

// mergeLLM overlays what the LLM found on a rule extraction. Priority and
// tags always come from the rules.
func (uc *implUseCase) mergeLLM(base detector.Extracted, item gemini.ActionItem, ref time.Time) detector.Extracted {
	merged := base
	merged.Tags = append([]string(nil), base.Tags...)

	if title := uc.detector.NormalizeTitle(item.Text); title != "" {
		merged.Title = title
	}
	if item.AssignedTo != nil {
		merged.AssignedTo = *item.AssignedTo
	}
	if item.DueDate != nil {
		if d, rule := uc.normalizeDue(*item.DueDate, ref); !d.IsZero() {
			merged.DueDate, merged.DueRule = d, rule
		}
	}
	return merged
}

// normalizeDue runs an LLM-provided due date through the resolver so every
// due date has the same form. Anything the resolver cannot read is dropped.
func (uc *implUseCase) normalizeDue(raw string, ref time.Time) (datemath.Date, datemath.Rule) {
	out := uc.resolver.Resolve(raw, ref)
	d, ok := out.Date()
	if !ok {
		return datemath.Date{}, datemath.RuleNone
	}
	return d, out.Rule()
}

func newSuggestion(ex detector.Extracted, confidence float64, source model.Source) actionsense.Suggestion {
	return actionsense.Suggestion{
		Extracted:  ex,
		Confidence: confidence,
		Source:     source,
		Preview:    detector.Preview(ex),
	}
}
