package trace

import "testing"

func TestRecorderRecordsInOrder(t *testing.T) {
	r := NewRecorder()
	r.Info(Site{Offset: 0, Construct: "root"}, "start")
	r.Route(Site{Offset: 2, Construct: "template"}, "attempting route")
	r.Failure(Site{Offset: 2, Construct: "template"}, "route failed")

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	wantSeverities := []string{SeverityInfo, SeverityRoute, SeverityFailure}
	for i, e := range entries {
		if e.Severity() != wantSeverities[i] {
			t.Errorf("entries[%d].Severity() = %q, want %q", i, e.Severity(), wantSeverities[i])
		}
	}
	if entries[1].Site().Construct != "template" {
		t.Errorf("entries[1].Site().Construct = %q, want %q", entries[1].Site().Construct, "template")
	}
	if entries[2].Message() != "route failed" {
		t.Errorf("entries[2].Message() = %q, want %q", entries[2].Message(), "route failed")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.Info(Site{}, "ignored")
	if got := r.Count(); got != 0 {
		t.Errorf("nil Recorder.Count() = %d, want 0", got)
	}
	if entries := r.Entries(); entries != nil {
		t.Errorf("nil Recorder.Entries() = %v, want nil", entries)
	}
}

func TestCountMatchesEntries(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 5; i++ {
		r.Route(Site{Offset: i}, "attempt")
	}
	if got := r.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if got := len(r.Entries()); got != 5 {
		t.Errorf("len(Entries()) = %d, want 5", got)
	}
}
