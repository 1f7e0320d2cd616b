package resume

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestSection_VisibleDefaultsToTrue(t *testing.T) {
	var s Section
	if !s.Visible() {
		t.Error("absent isVisible must mean visible")
	}

	hidden := false
	s.IsVisible = &hidden
	if s.Visible() {
		t.Error("isVisible=false must hide the section")
	}
}

func TestSection_ContentDispatchByType(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want any
	}{
		{"header", `{"id":"h","type":"header","title":"","content":{"name":"N"}}`, HeaderContent{}},
		{"long text", `{"id":"s","type":"long-text","title":"","content":{"text":"t"}}`, LongTextContent{}},
		{"standard list", `{"id":"e","type":"standard-list","title":"","content":{"items":[]}}`, StandardListContent{}},
		{"detailed list", `{"id":"x","type":"detailed-list","title":"","content":{"items":[]}}`, DetailedListContent{}},
		{"grouped list", `{"id":"g","type":"grouped-list","title":"","content":{"groups":[]}}`, GroupedListContent{}},
	}

	for _, tc := range cases {
		var s Section
		if err := json.Unmarshal([]byte(tc.raw), &s); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		gotType := typeName(s.Content)
		wantType := typeName(tc.want)
		if gotType != wantType {
			t.Errorf("%s: content decoded as %s, want %s", tc.name, gotType, wantType)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case HeaderContent:
		return "HeaderContent"
	case LongTextContent:
		return "LongTextContent"
	case StandardListContent:
		return "StandardListContent"
	case DetailedListContent:
		return "DetailedListContent"
	case GroupedListContent:
		return "GroupedListContent"
	case RawContent:
		return "RawContent"
	default:
		return "unknown"
	}
}

func TestSection_UnknownTypeRoundTrips(t *testing.T) {
	raw := []byte(`{"id":"c","type":"custom-chart","title":"Chart","content":{"bars":[1,2,3],"color":"red"}}`)

	var s Section
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := s.Content.(RawContent); !ok {
		t.Fatalf("unknown type must keep raw content, got %T", s.Content)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var want, got bytes.Buffer
	if err := json.Compact(&want, raw); err != nil {
		t.Fatalf("compact: %v", err)
	}
	if err := json.Compact(&got, out); err != nil {
		t.Fatalf("compact: %v", err)
	}
	if want.String() != got.String() {
		t.Fatalf("round trip lost data:\n in  %s\n out %s", want.String(), got.String())
	}
}

func TestHeaderContent_LinkVisibility(t *testing.T) {
	hidden := false

	c := HeaderContent{Linkedin: "linkedin.com/in/u", Github: "github.com/u"}
	if !c.LinkedinShown() || !c.GithubShown() {
		t.Error("non-empty links with absent flags must be shown")
	}

	c.LinkedinVisible = &hidden
	if c.LinkedinShown() {
		t.Error("linkedinVisible=false must hide the link")
	}

	empty := HeaderContent{GithubVisible: nil}
	if empty.GithubShown() {
		t.Error("empty github handle must never be shown")
	}
}

func TestDefaultResumeData_FreshValuePerCall(t *testing.T) {
	a := DefaultResumeData()
	b := DefaultResumeData()

	*a.Sections[0].IsVisible = false
	if !*b.Sections[0].IsVisible {
		t.Fatal("default data shares state between calls")
	}
	if a.Settings == b.Settings {
		t.Fatal("default settings pointer shared between calls")
	}
}

func TestEmptyContent_NewItemsGetIDs(t *testing.T) {
	c, ok := EmptyContent(TypeStandardList).(StandardListContent)
	if !ok {
		t.Fatalf("unexpected content type %T", EmptyContent(TypeStandardList))
	}
	if len(c.Items) != 1 || c.Items[0].ID == "" {
		t.Fatalf("new standard item must carry an id: %+v", c.Items)
	}

	d, ok := EmptyContent(TypeDetailedList).(DetailedListContent)
	if !ok {
		t.Fatal("detailed list content")
	}
	if len(d.Items) != 1 || d.Items[0].ID == "" || len(d.Items[0].Points) != 1 {
		t.Fatalf("new detailed item shape: %+v", d.Items)
	}
}
