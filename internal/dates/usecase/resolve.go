package usecase

import (
	"context"
	"unicode/utf8"

	"actionsense/internal/dates"
)

func (uc *implUseCase) Resolve(ctx context.Context, input dates.ResolveInput) (dates.ResolveOutput, error) {
	if utf8.RuneCountInString(input.Text) > MaxTextRunes {
		return dates.ResolveOutput{}, dates.ErrTextTooLong
	}

	ref := input.Reference
	if ref.IsZero() {
		ref = uc.now()
	}

	outcome := uc.resolver.Resolve(input.Text, ref)
	out := dates.ResolveOutput{
		Resolved:    outcome.Resolved(),
		Rule:        outcome.Rule(),
		RuleVersion: uc.resolver.Version(),
		Reference:   uc.resolver.Today(ref),
	}
	if d, ok := outcome.Date(); ok {
		out.Date = d
	}

	uc.l.Debugf(ctx, "dates.Resolve text=%q ref=%s result=%s", input.Text, out.Reference, outcome)
	return out, nil
}
