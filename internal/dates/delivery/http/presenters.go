package http

import (
	"strings"
	"time"

	"actionsense/internal/dates"
	"actionsense/pkg/datemath"
)

// --- Request DTOs ---

type resolveReq struct {
	Text      string `json:"text"      binding:"required"`
	Reference string `json:"reference" example:"2025-11-13"`
}

func (r resolveReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

func (r resolveReq) toInput(loc *time.Location) (dates.ResolveInput, error) {
	ref, err := datemath.ParseReference(r.Reference, loc)
	if err != nil {
		return dates.ResolveInput{}, dates.ErrInvalidReference
	}
	return dates.ResolveInput{Text: r.Text, Reference: ref}, nil
}

// --- Response DTOs ---

type resolveResp struct {
	Resolved    bool   `json:"resolved"`
	Date        string `json:"date,omitempty"      example:"2025-11-14"`
	Rule        string `json:"rule,omitempty"      example:"day_offset"`
	RuleVersion string `json:"rule_version"        example:"v2"`
	Reference   string `json:"reference"           example:"2025-11-13"`
}

func (h *handler) newResolveResp(out dates.ResolveOutput) resolveResp {
	return resolveResp{
		Resolved:    out.Resolved,
		Date:        out.Date.String(),
		Rule:        string(out.Rule),
		RuleVersion: out.RuleVersion,
		Reference:   out.Reference.String(),
	}
}
