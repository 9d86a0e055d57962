package http

import (
	"strings"
	"time"

	"actionsense/internal/schedule"
	"actionsense/pkg/datemath"
)

// --- Request DTOs ---

type parseReq struct {
	Text      string `json:"text"      binding:"required" example:"내일 오전 10시에 회의실 A에서 디자인 리뷰"`
	Reference string `json:"reference" example:"2025-11-13"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errTextRequired
	}
	return nil
}

func (r parseReq) toInput(loc *time.Location) (schedule.ParseInput, error) {
	ref, err := datemath.ParseReference(r.Reference, loc)
	if err != nil {
		return schedule.ParseInput{}, errInvalidReference
	}
	return schedule.ParseInput{Text: r.Text, Reference: ref}, nil
}

// exportReq is usually a parse result the user reviewed. Without start the
// configured default applies and end is ignored. An end before the start is
// read as the next day.
type exportReq struct {
	Title        string   `json:"title"        example:"디자인 리뷰"`
	Date         string   `json:"date"         binding:"required" example:"2025-11-14"`
	Start        string   `json:"start"        example:"10:00"`
	End          string   `json:"end"          example:"10:30"`
	Location     string   `json:"location"     example:"회의실 A"`
	Participants []string `json:"participants"`
	Description  string   `json:"description"`
}

func (r exportReq) validate() error { return nil }

func (r exportReq) toInput() (schedule.ExportInput, error) {
	date, err := datemath.ParseDate(strings.TrimSpace(r.Date))
	if err != nil {
		return schedule.ExportInput{}, errInvalidDate
	}

	draft := schedule.EventDraft{
		Title:        r.Title,
		Date:         date,
		DateResolved: true,
		Location:     r.Location,
		Participants: r.Participants,
	}
	if r.Start != "" {
		if draft.StartTime, err = schedule.ParseClock(r.Start); err != nil {
			return schedule.ExportInput{}, errInvalidClock
		}
		draft.TimeExplicit = true
	}
	if r.End != "" && draft.TimeExplicit {
		end, err := schedule.ParseClock(r.End)
		if err != nil {
			return schedule.ExportInput{}, errInvalidClock
		}
		draft.EndTime = end
		draft.Duration = clockSpan(draft.StartTime, end)
	}

	return schedule.ExportInput{Draft: draft, Description: r.Description}, nil
}

func clockSpan(start, end schedule.Clock) time.Duration {
	mins := (end.Hour*60 + end.Minute) - (start.Hour*60 + start.Minute)
	if mins <= 0 {
		mins += 24 * 60
	}
	return time.Duration(mins) * time.Minute
}

type listEventsReq struct {
	Date string `form:"date"`
}

func (r listEventsReq) validate() error { return nil }

func (r listEventsReq) toInput() (schedule.ListEventsInput, error) {
	if r.Date == "" {
		return schedule.ListEventsInput{}, nil
	}
	d, err := datemath.ParseDate(r.Date)
	if err != nil {
		return schedule.ListEventsInput{}, errInvalidDate
	}
	return schedule.ListEventsInput{Date: d}, nil
}

// --- Response DTOs ---

type draftResp struct {
	Title        string   `json:"title"`
	Date         string   `json:"date,omitempty"`
	DateResolved bool     `json:"date_resolved"`
	DateRule     string   `json:"date_rule,omitempty"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	TimeExplicit bool     `json:"time_explicit"`
	Location     string   `json:"location,omitempty"`
	Participants []string `json:"participants"`
}

func (h *handler) newDraftResp(d schedule.EventDraft) draftResp {
	participants := d.Participants
	if participants == nil {
		participants = []string{}
	}
	return draftResp{
		Title:        d.Title,
		Date:         d.Date.String(),
		DateResolved: d.DateResolved,
		DateRule:     string(d.DateRule),
		Start:        d.StartTime.String(),
		End:          d.EndTime.String(),
		TimeExplicit: d.TimeExplicit,
		Location:     d.Location,
		Participants: participants,
	}
}

type exportResp struct {
	EventID string `json:"event_id"`
	Link    string `json:"link"`
	Start   string `json:"start" example:"2025-11-14T10:00:00+09:00"`
	End     string `json:"end"   example:"2025-11-14T10:30:00+09:00"`
}

func (h *handler) newExportResp(o schedule.ExportOutput) exportResp {
	return exportResp{
		EventID: o.EventID,
		Link:    o.Link,
		Start:   o.Start.In(h.loc).Format(time.RFC3339),
		End:     o.End.In(h.loc).Format(time.RFC3339),
	}
}

type eventResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	AllDay   bool   `json:"all_day"`
	Location string `json:"location,omitempty"`
	Link     string `json:"link,omitempty"`
}

type listEventsResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListEventsResp(o schedule.ListEventsOutput) listEventsResp {
	events := make([]eventResp, len(o.Events))
	for i, e := range o.Events {
		er := eventResp{
			ID:       e.ID,
			Title:    e.Title,
			AllDay:   e.AllDay,
			Location: e.Location,
			Link:     e.Link,
		}
		if e.AllDay {
			er.Start = e.Start.Format(time.DateOnly)
			er.End = e.End.Format(time.DateOnly)
		} else {
			er.Start = e.Start.In(h.loc).Format(time.RFC3339)
			er.End = e.End.In(h.loc).Format(time.RFC3339)
		}
		events[i] = er
	}
	return listEventsResp{Events: events}
}
