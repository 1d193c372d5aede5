package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/storage"
)

type fakeReplayStore struct {
	replays []storage.ReplaySummary
	deleted []string
	failing bool
}

func (f *fakeReplayStore) Replays(limit int) ([]storage.ReplaySummary, error) {
	if f.failing {
		return nil, errors.New("storage: boom")
	}
	if limit < len(f.replays) {
		return f.replays[:limit], nil
	}
	return f.replays, nil
}

func (f *fakeReplayStore) DeleteReplay(id string) error {
	for i, r := range f.replays {
		if r.ID == id {
			f.replays = append(f.replays[:i], f.replays[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return storage.ErrNotFound
}

func newFakeStore() *fakeReplayStore {
	at := time.Date(2026, 5, 1, 18, 30, 0, 0, time.UTC)
	return &fakeReplayStore{replays: []storage.ReplaySummary{
		{ID: "11111111-aaaa", CreatedAt: at, FrameCount: 600, Duration: 10 * time.Second, Banner: "Left Player Wins!"},
		{ID: "22222222-bbbb", CreatedAt: at, FrameCount: 60, Duration: time.Second},
	}}
}

func updateBrowser(t *testing.T, m BrowserModel, msg tea.Msg) (BrowserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(BrowserModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected BrowserModel", next)
	}
	return bm, cmd
}

func TestReplayRow(t *testing.T) {
	store := newFakeStore()

	row := ReplayRow(store.replays[0])
	if row[0] != "11111111" {
		t.Errorf("id column = %q, expected short id", row[0])
	}
	if row[2] != "600" || row[3] != "10.0s" || row[4] != "Left Player Wins!" {
		t.Errorf("unexpected row %v", row)
	}

	if row := ReplayRow(store.replays[1]); row[4] != "in play" {
		t.Errorf("outcome without banner = %q, expected %q", row[4], "in play")
	}
}

func TestBrowserWatchSelectsReplay(t *testing.T) {
	m := NewBrowserModel(newFakeStore(), 80, 24)

	m, _ = updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != "22222222-bbbb" {
		t.Errorf("Selected() = %q, expected second replay", m.Selected())
	}
	if cmd == nil {
		t.Error("watch should quit the browser")
	}
}

func TestBrowserDelete(t *testing.T) {
	store := newFakeStore()
	m := NewBrowserModel(store, 80, 24)

	m, _ = updateBrowser(t, m, runeKey('d'))

	if len(store.deleted) != 1 || store.deleted[0] != "11111111-aaaa" {
		t.Errorf("deleted = %v, expected first replay", store.deleted)
	}
	if len(m.replays) != 1 {
		t.Errorf("browser shows %d replays after delete, expected 1", len(m.replays))
	}
}

func TestBrowserEmptyAndErrors(t *testing.T) {
	m := NewBrowserModel(&fakeReplayStore{}, 80, 24)
	if !strings.Contains(m.View(), "No replays recorded yet") {
		t.Error("empty browser should say so")
	}

	m, _ = updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != "" {
		t.Error("enter on an empty list should not select anything")
	}

	m = NewBrowserModel(&fakeReplayStore{failing: true}, 80, 24)
	if !strings.Contains(m.View(), "boom") {
		t.Error("load error should be shown")
	}
}
