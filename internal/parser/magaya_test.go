package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pgatool/internal/model"
)

func TestFormatGMTStamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Sat Aug 09 2025 06:07:32 GMT-0500 (Central Daylight Time)", "08/09/25 06:07"},
		{"Wed Dec 31 2025 23:59:01 GMT+0800 (China Standard Time)", "12/31/25 23:59"},
		{"Sat Foo 09 2025 06:07:32 GMT-0500", "00/09/25 06:07"},
		{"Sat Aug 9 2025 06:07:32 GMT-0500", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatGMTStamp(tc.in); got != tc.want {
			t.Fatalf("FormatGMTStamp(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMagayaParser_CarriesEventTime(t *testing.T) {
	t.Parallel()

	text := "Sat Aug 09 2025 06:07:32 GMT-0500 (Central Daylight Time)\n" +
		"Line# 3 CPSC 0001 DATA UNDER PGA REVIEW\n" +
		"  Line# 4 CPSC MAY PROCEED  \n" +
		"Line# 5 CPSC something else\n" +
		"\n" +
		"Sun Aug 10 2025 10:30:00 GMT-0500 (Central Daylight Time)\n" +
		"Line# 12 MAY PROCEED\n" +
		"Status Line# 7 MAY PROCEED\n"

	got := MagayaParser{}.Parse([]model.InputGroup{{ID: 1, EntryNumber: " ABC12345678 ", Text: text}}, model.AirportORD)

	want := []model.LogRow{
		{EntryNumber: "ABC12345678", Status: model.StatusCPSCCheck, EventTime: "08/09/25 06:07", TimeZone: model.ZoneCentral, Line: "3"},
		{EntryNumber: "ABC12345678", Status: model.StatusCPSCRelease, EventTime: "08/09/25 06:07", TimeZone: model.ZoneCentral, Line: "4"},
		{EntryNumber: "ABC12345678", Status: model.StatusCPSCRelease, EventTime: "08/10/25 10:30", TimeZone: model.ZoneCentral, Line: "12"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestMagayaParser_SkipsIncompleteGroups(t *testing.T) {
	t.Parallel()

	groups := []model.InputGroup{
		{ID: 1, EntryNumber: "", Text: "Line# 1 MAY PROCEED"},
		{ID: 2, EntryNumber: "E2", Text: "   "},
		{ID: 3, EntryNumber: "E3", Text: "Line# 9 MAY PROCEED"},
	}

	got := MagayaParser{}.Parse(groups, "ATL")
	if len(got) != 1 {
		t.Fatalf("rows=%d, want 1: %+v", len(got), got)
	}
	if got[0].EntryNumber != "E3" || got[0].EventTime != "" || got[0].TimeZone != "" {
		t.Fatalf("unexpected row: %+v", got[0])
	}
}

func TestMagayaParser_StateIsPerGroup(t *testing.T) {
	t.Parallel()

	groups := []model.InputGroup{
		{ID: 1, EntryNumber: "E1", Text: "Sat Aug 09 2025 06:07:32 GMT-0500\nLine# 1 MAY PROCEED"},
		{ID: 2, EntryNumber: "E2", Text: "Line# 2 DATA UNDER PGA REVIEW"},
	}

	got := MagayaParser{}.Parse(groups, model.AirportJFK)
	if len(got) != 2 {
		t.Fatalf("rows=%d, want 2", len(got))
	}
	if got[1].EventTime != "" {
		t.Fatalf("event time leaked across groups: %q", got[1].EventTime)
	}
	if got[1].TimeZone != model.ZoneEastern {
		t.Fatalf("timeZone=%q", got[1].TimeZone)
	}
}
