package gemini

import "testing"

func TestDecodeActionItems(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTexts []string
		wantErr   bool
	}{
		{name: "bare array", raw: `[{"id":1,"text":"a"},{"id":2,"text":"b"}]`, wantTexts: []string{"a", "b"}},
		{name: "empty array", raw: `[]`, wantTexts: []string{}},
		{name: "actions key", raw: `{"actions":[{"text":"a"}]}`, wantTexts: []string{"a"}},
		{name: "snake key", raw: `{"action_items":[{"text":"a"}]}`, wantTexts: []string{"a"}},
		{name: "todos key", raw: `{"todos":[{"text":"a"}]}`, wantTexts: []string{"a"}},
		{name: "first array value", raw: `{"meta":{"n":2},"result":[{"text":"x"}],"other":[{"text":"y"}]}`, wantTexts: []string{"x"}},
		{name: "no array", raw: `{"summary":"none"}`, wantTexts: []string{}},
		{name: "code fence", raw: "```json\n[{\"text\":\"a\"}]\n```", wantTexts: []string{"a"}},
		{name: "prose around", raw: `Here you go: [{"text":"a"}] hope it helps`, wantTexts: []string{"a"}},
		{name: "title fallback", raw: `[{"title":"a"}]`, wantTexts: []string{"a"}},
		{name: "skip non objects and blanks", raw: `["a", {"text":"  "}, {"text":"b"}]`, wantTexts: []string{"b"}},
		{name: "invalid", raw: `not json at all`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := DecodeActionItems(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(items) != len(tt.wantTexts) {
				t.Fatalf("got %d items, want %d", len(items), len(tt.wantTexts))
			}
			for i, want := range tt.wantTexts {
				if items[i].Text != want {
					t.Errorf("item %d text = %q, want %q", i, items[i].Text, want)
				}
			}
		})
	}
}

func TestDecodeActionItemsOptionalFields(t *testing.T) {
	items, err := DecodeActionItems(`[{"text":"a","assignedTo":null,"dueDate":"null"},{"id":7,"text":"b","assignedTo":"지수"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].AssignedTo != nil || items[0].DueDate != nil {
		t.Errorf("expected nil optional fields, got %+v", items[0])
	}
	if items[0].ID != 1 {
		t.Errorf("positional id = %d", items[0].ID)
	}
	if items[1].ID != 7 || items[1].AssignedTo == nil || *items[1].AssignedTo != "지수" {
		t.Errorf("unexpected second item %+v", items[1])
	}
}
