package usecase

import (
	"context"
	"errors"
	"testing"

	"actionsense/internal/actionsense"
	"actionsense/internal/model"
	"actionsense/pkg/gemini"
)

func TestAnalyzeAutoRegisters(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		confidence float64
	}{
		{name: "every signal", text: "@민수 내일까지 API 문서 정리 부탁해요 #docs 긴급", confidence: 1},
		{name: "exactly at threshold", text: "담당: 지수, 금요일까지 테스트 결과 공유해줘 우선순위: 하", confidence: 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := &mockExtractor{}
			uc, _ := newTestUseCase(t, ext, DefaultOptions())

			out, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: tt.text, Channel: "general"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.IsAction || out.AutoCreated == nil {
				t.Fatalf("expected auto-created task, got %+v", out)
			}
			if out.Suggestions[0].Confidence != tt.confidence {
				t.Errorf("confidence = %v, want %v", out.Suggestions[0].Confidence, tt.confidence)
			}

			task := out.AutoCreated
			if want := "고신뢰 자동생성: “" + task.Title + "”"; task.Description != want {
				t.Errorf("Description = %q, want %q", task.Description, want)
			}
			if task.Status != model.StatusTodo || task.Progress != 0 || task.Channel != "general" {
				t.Errorf("unexpected task %+v", task)
			}
			if ext.calls != 0 {
				t.Errorf("LLM called %d times for a confident hit", ext.calls)
			}

			listed, _ := uc.ListTasks(context.Background(), actionsense.ListTasksInput{})
			if listed.Total != 1 {
				t.Errorf("stored %d tasks, want 1", listed.Total)
			}
		})
	}
}

func TestAnalyzeMidConfidenceSkipsLLM(t *testing.T) {
	ext := &mockExtractor{}
	uc, _ := newTestUseCase(t, ext, DefaultOptions())

	out, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: "민수 담당으로 다음주 화요일까지 배포 진행하자"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsAction || out.AutoCreated != nil || len(out.Suggestions) != 1 {
		t.Fatalf("unexpected output %+v", out)
	}
	s := out.Suggestions[0]
	if s.Source != model.SourceRule || s.Confidence != 0.9 {
		t.Errorf("unexpected suggestion %+v", s)
	}
	if s.Preview != "민수 담당으로 다음주 화요일까지 배포 진행하자 / 담당:민수 / 기한:2025-11-18 / 우선순위:보통" {
		t.Errorf("Preview = %q", s.Preview)
	}
	if ext.calls != 0 {
		t.Errorf("LLM called for confidence 0.9")
	}
}

func TestAnalyzeLowConfidenceRefinedByLLM(t *testing.T) {
	ext := &mockExtractor{items: []gemini.ActionItem{
		{ID: 1, Text: "주간 회의 일정 잡기", AssignedTo: strPtr("지수"), DueDate: strPtr("모레")},
	}}
	uc, _ := newTestUseCase(t, ext, DefaultOptions())

	out, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: "회의 일정 잡아줘 #weekly"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Suggestions) != 2 {
		t.Fatalf("expected rule and LLM suggestions, got %d", len(out.Suggestions))
	}

	rule, llm := out.Suggestions[0], out.Suggestions[1]
	if rule.Confidence != 0.75 {
		t.Errorf("rule confidence = %v", rule.Confidence)
	}
	if llm.Source != model.SourceLLM || llm.Confidence != 0.85 {
		t.Errorf("unexpected LLM suggestion %+v", llm)
	}
	ex := llm.Extracted
	if ex.Title != "주간 회의 일정 잡기" || ex.AssignedTo != "지수" || ex.DueDate.String() != "2025-11-15" {
		t.Errorf("merge lost LLM fields: %+v", ex)
	}
	if ex.Priority != rule.Extracted.Priority || len(ex.Tags) != 1 || ex.Tags[0] != "weekly" {
		t.Errorf("merge did not keep rule priority and tags: %+v", ex)
	}
	if out.AutoCreated != nil {
		t.Errorf("low confidence must not auto-register")
	}
}

func TestAnalyzeLLMUnreadableDueIsDropped(t *testing.T) {
	ext := &mockExtractor{items: []gemini.ActionItem{{Text: "회의 일정 잡기", DueDate: strPtr("someday")}}}
	uc, _ := newTestUseCase(t, ext, DefaultOptions())

	out, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: "회의 일정 잡아줘"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(out.Suggestions))
	}
	ex := out.Suggestions[1].Extracted
	if !ex.DueDate.IsZero() {
		t.Errorf("DueDate = %q, want none", ex.DueDate)
	}
	if ex.Title != "회의 일정 잡기" {
		t.Errorf("Title = %q", ex.Title)
	}
}

func TestAnalyzeLLMFailureKeepsRuleSuggestion(t *testing.T) {
	ext := &mockExtractor{err: errors.New("quota exceeded")}
	uc, l := newTestUseCase(t, ext, DefaultOptions())

	out, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: "회의 일정 잡아줘"})
	if err != nil {
		t.Fatalf("LLM failure must not fail Analyze: %v", err)
	}
	if !out.IsAction || len(out.Suggestions) != 1 || out.Suggestions[0].Source != model.SourceRule {
		t.Errorf("unexpected output %+v", out)
	}
	if l.warns == 0 {
		t.Errorf("LLM failure was not logged")
	}
}

func TestAnalyzeNoRuleHit(t *testing.T) {
	const text = "점심 먹고 서버 로그 좀 봐 줄래요?"

	t.Run("llm finds an action", func(t *testing.T) {
		ext := &mockExtractor{items: []gemini.ActionItem{{Text: "서버 로그 확인", DueDate: strPtr("2025-11-20")}}}
		uc, _ := newTestUseCase(t, ext, DefaultOptions())

		out, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: text})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.IsAction || len(out.Suggestions) != 1 {
			t.Fatalf("unexpected output %+v", out)
		}
		s := out.Suggestions[0]
		if s.Confidence != 0.8 || s.Source != model.SourceLLM || s.Extracted.Priority != model.PriorityNormal {
			t.Errorf("unexpected suggestion %+v", s)
		}
		if s.Extracted.Title != "서버 로그 확인" || s.Extracted.DueDate.String() != "2025-11-20" || len(s.Extracted.Tags) != 0 {
			t.Errorf("unexpected extraction %+v", s.Extracted)
		}
	})

	t.Run("llm finds nothing", func(t *testing.T) {
		ext := &mockExtractor{items: []gemini.ActionItem{}}
		uc, _ := newTestUseCase(t, ext, DefaultOptions())

		out, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: text})
		if err != nil || out.IsAction {
			t.Errorf("expected no action, got %+v, %v", out, err)
		}
	})

	t.Run("llm disabled", func(t *testing.T) {
		ext := &mockExtractor{items: []gemini.ActionItem{{Text: "x"}}}
		opts := DefaultOptions()
		opts.LLMFallbackEnabled = false
		uc, _ := newTestUseCase(t, ext, opts)

		out, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: text})
		if err != nil || out.IsAction {
			t.Errorf("expected no action, got %+v, %v", out, err)
		}
		if ext.calls != 0 {
			t.Errorf("disabled LLM was called")
		}
	})

	t.Run("no extractor configured", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil, DefaultOptions())

		out, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: text})
		if err != nil || out.IsAction {
			t.Errorf("expected no action, got %+v, %v", out, err)
		}
	})
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	uc, _ := newTestUseCase(t, nil, DefaultOptions())

	if _, err := uc.Analyze(context.Background(), actionsense.AnalyzeInput{Text: "  "}); !errors.Is(err, actionsense.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}
