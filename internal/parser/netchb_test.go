package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pgatool/internal/model"
)

func TestPadMonth(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"7/06/25 18:18":  "07/06/25 18:18",
		"11/06/25 18:18": "11/06/25 18:18",
		"07/06/25 18:18": "07/06/25 18:18",
		"18:18":          "18:18",
		"":               "",
	}
	for in, want := range cases {
		if got := PadMonth(in); got != want {
			t.Fatalf("PadMonth(%q)=%q, want %q", in, got, want)
		}
	}
}

const netchbSample = `[7/06/25 18:18] CPS, CPS: DATA UNDER PGA REVIEW
  [CPS] Summary Line 1 held for review
  [CPS] Summary Line 2 held for review
[11/06/25 09:05] FDA, FDA: UNDER PGA REVIEW
  [FDA] Line 3, product code 12AB345
  [FDA] no line number here
random noise`

func TestNETCHBParser_HeadersCarryState(t *testing.T) {
	t.Parallel()

	got := NETCHBParser{}.Parse([]model.InputGroup{{ID: 1, EntryNumber: "NB1", Text: netchbSample}}, model.AirportSFO)

	want := []model.LogRow{
		{EntryNumber: "NB1", Status: model.StatusCPSCCheck, EventTime: "07/06/25 18:18", TimeZone: model.ZonePacific, Line: "1"},
		{EntryNumber: "NB1", Status: model.StatusCPSCCheck, EventTime: "07/06/25 18:18", TimeZone: model.ZonePacific, Line: "2"},
		{EntryNumber: "NB1", Status: model.StatusFDACheck, EventTime: "11/06/25 09:05", TimeZone: model.ZonePacific, Line: "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestNETCHBParser_DetailBeforeHeaderHasEmptyState(t *testing.T) {
	t.Parallel()

	text := "[CPS] Summary Line 4 early\n[8/01/25 10:00] CPS, CPS: RELEASED\n[CPS] Summary Line 5 late"
	got := NETCHBParser{}.Parse([]model.InputGroup{{ID: 1, EntryNumber: "NB2", Text: text}}, model.AirportMIA)

	if len(got) != 2 {
		t.Fatalf("rows=%d, want 2", len(got))
	}
	if got[0].Status != "" || got[0].EventTime != "" {
		t.Fatalf("early detail row should be empty: %+v", got[0])
	}
	// 标题行无 DATA UNDER PGA REVIEW 时只更新时间
	if got[1].Status != "" || got[1].EventTime != "08/01/25 10:00" {
		t.Fatalf("late detail row: %+v", got[1])
	}
}

func TestNETCHBParser_StateResetsPerGroup(t *testing.T) {
	t.Parallel()

	groups := []model.InputGroup{
		{ID: 1, EntryNumber: "A", Text: "[7/06/25 18:18] FDA, UNDER PGA REVIEW\n[FDA] Line 1, x"},
		{ID: 2, EntryNumber: "B", Text: "[FDA] Line 2, y"},
	}
	got := NETCHBParser{}.Parse(groups, model.AirportORD)
	if len(got) != 2 {
		t.Fatalf("rows=%d, want 2", len(got))
	}
	if got[1].Status != "" || got[1].EventTime != "" {
		t.Fatalf("state leaked across groups: %+v", got[1])
	}
}

func TestLookupVariant(t *testing.T) {
	t.Parallel()

	v, err := LookupVariant("NETCHB")
	if err != nil {
		t.Fatalf("LookupVariant: %v", err)
	}
	if v.Name != "netchb" || v.GroupCount != 20 {
		t.Fatalf("unexpected variant: %+v", v)
	}
	if _, err := LookupVariant("nimbus"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}

	if got := Magaya.ExportFilename("123-45678901"); got != "123-45678901_MAGAYA T01 PGA.xlsx" {
		t.Fatalf("filename=%q", got)
	}
	if got := NETCHB.ExportFilename(" "); got != "NETCHB T01 PGA.xlsx" {
		t.Fatalf("filename=%q", got)
	}
}
