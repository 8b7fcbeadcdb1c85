package events

import (
	"testing"

	"aquaclub/app/models"
)

func TestParseLaneCoaches(t *testing.T) {
	raw := `{"laneCoaches":[{"lane":1,"coachId":"X"},{"lane":2,"coachId":"Y"}]}`
	assignments := parseLaneCoaches(raw)
	if len(assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(assignments))
	}
	if assignments[0].Lane != 1 || assignments[0].CoachID != "X" {
		t.Fatalf("unexpected first assignment: %+v", assignments[0])
	}
	if assignments[1].Lane != 2 || assignments[1].CoachID != "Y" {
		t.Fatalf("unexpected second assignment: %+v", assignments[1])
	}
}

func TestParseLaneCoachesSoftFail(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"malformed":      `{"laneCoaches":[{`,
		"not json":       "lane 1 goes to X",
		"wrong type":     `{"laneCoaches":"X"}`,
		"missing field":  `{"categories":[{"distance":50}]}`,
		"null assignees": `{"laneCoaches":null}`,
	}
	for name, raw := range cases {
		if got := parseLaneCoaches(raw); len(got) != 0 {
			t.Fatalf("case %s: expected empty result, got %v", name, got)
		}
	}
}

func TestMapLaneCoaches(t *testing.T) {
	assignments := []laneCoachConfig{
		{Lane: 1, CoachID: "known"},
		{Lane: 2, CoachID: "dangling"},
		{Lane: 3, CoachID: ""},
	}
	coaches := map[string]*models.User{
		"known": {ID: "known", FirstName: "Ana", LastName: "Paredes"},
	}

	resolved := mapLaneCoaches(assignments, coaches)
	if len(resolved) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resolved))
	}

	if resolved[0].Lane != 1 || resolved[0].CoachID != "known" || resolved[0].CoachName != "Ana Paredes" {
		t.Fatalf("expected known coach to resolve to full name, got %+v", resolved[0])
	}
	if resolved[1].Lane != 2 || resolved[1].CoachID != "dangling" || resolved[1].CoachName != CoachNamePlaceholder {
		t.Fatalf("expected dangling coach id to resolve to placeholder, got %+v", resolved[1])
	}
	if resolved[2].CoachName != CoachNamePlaceholder {
		t.Fatalf("expected empty coach id to resolve to placeholder, got %+v", resolved[2])
	}
}

func TestMapLaneCoachesEmpty(t *testing.T) {
	if got := mapLaneCoaches(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
