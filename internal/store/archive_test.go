package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"
)

func testHistory() model.History {
	start := time.Date(2023, 1, 2, 8, 0, 0, 0, time.UTC)

	s1 := model.NewSession(start)
	s1.ID = model.SessionID(start, 0)
	c := &model.Command{
		Filename: `c:\jobs\door.tap`,
		Minutes:  "0",
		Seconds:  "37",
		Status:   "Run was OK",
		Rapid:    3 * time.Second,
		Feed:     2 * time.Second,
		Duration: 5 * time.Second,
		Start:    start.Add(4*time.Minute + 55*time.Second),
		End:      start.Add(5 * time.Minute),
	}
	c.ID = model.CommandID(c.Start, 0)
	c.Axes = [model.NumAxes]string{"1.250", "0.000", "-0.500", "0.000", "0.000", "0.000"}
	c.Inputs[0] = "1"
	s1.Append(c)
	s1.Close(start.Add(10 * time.Minute))
	s1.Recalculate()

	open := model.NewSession(start.Add(4 * time.Hour))
	open.ID = model.SessionID(open.StartTime, 1)
	c2 := &model.Command{
		Filename: "home",
		Status:   "ok",
		Rapid:    time.Minute,
		Duration: time.Minute,
		Start:    open.StartTime.Add(time.Minute),
		End:      open.StartTime.Add(2 * time.Minute),
	}
	c2.ID = model.CommandID(c2.Start, 0)
	open.Append(c2)
	open.Recalculate()

	return model.History{s1, open}
}

func TestArchiveRoundTrip(t *testing.T) {
	a, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = a.Close() }()

	want := testHistory()
	if err := a.Export(want); err != nil {
		t.Fatalf("export: %v", err)
	}

	sessions, commands, err := a.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if sessions != 2 || commands != 2 {
		t.Errorf("counts = %d/%d, want 2/2", sessions, commands)
	}

	got, err := a.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("sessions = %d, want %d", len(got), len(want))
	}

	for i := range want {
		ws, gs := want[i], got[i]
		if gs.ID != ws.ID {
			t.Errorf("session %d ID = %s, want %s", i, gs.ID, ws.ID)
		}
		if !gs.StartTime.Equal(ws.StartTime) {
			t.Errorf("session %d StartTime = %v, want %v", i, gs.StartTime, ws.StartTime)
		}
		wEnd, wClosed := ws.End()
		gEnd, gClosed := gs.End()
		if gClosed != wClosed || (wClosed && !gEnd.Equal(wEnd)) {
			t.Errorf("session %d end = %v/%v, want %v/%v", i, gEnd, gClosed, wEnd, wClosed)
		}
		if gs.Totals != ws.Totals {
			t.Errorf("session %d Totals = %+v, want %+v", i, gs.Totals, ws.Totals)
		}
		if len(gs.Commands) != len(ws.Commands) {
			t.Fatalf("session %d commands = %d, want %d", i, len(gs.Commands), len(ws.Commands))
		}
		for j := range ws.Commands {
			wc, gc := ws.Commands[j], gs.Commands[j]
			if gc.ID != wc.ID || gc.Filename != wc.Filename || gc.Status != wc.Status {
				t.Errorf("command %d/%d = %s %q %q, want %s %q %q",
					i, j, gc.ID, gc.Filename, gc.Status, wc.ID, wc.Filename, wc.Status)
			}
			if gc.Duration != wc.Duration || !gc.Start.Equal(wc.Start) || !gc.End.Equal(wc.End) {
				t.Errorf("command %d/%d timing differs", i, j)
			}
			if gc.Axes != wc.Axes || gc.Inputs != wc.Inputs {
				t.Errorf("command %d/%d state snapshot differs", i, j)
			}
		}
	}
}

func TestArchiveExportReplaces(t *testing.T) {
	a, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = a.Close() }()

	if err := a.Export(testHistory()); err != nil {
		t.Fatalf("first export: %v", err)
	}
	if err := a.Export(testHistory()[:1]); err != nil {
		t.Fatalf("second export: %v", err)
	}

	sessions, commands, err := a.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if sessions != 1 || commands != 1 {
		t.Errorf("counts after replace = %d/%d, want 1/1", sessions, commands)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "archive.db")
	a, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
