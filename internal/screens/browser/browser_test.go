package browser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/engine"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/registry"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/router"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screen"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/screens/practice"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/store"
)

type fakeProgress struct {
	rows []store.ProgressSnapshot
	err  error
}

func (f *fakeProgress) Record(ctx context.Context, slug string, score float64, passed bool) error {
	return nil
}

func (f *fakeProgress) Get(ctx context.Context, slug string) (*store.ProgressSnapshot, error) {
	return nil, nil
}

func (f *fakeProgress) All(ctx context.Context) ([]store.ProgressSnapshot, error) {
	return f.rows, f.err
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testRegistry(t *testing.T, slugs ...string) *registry.Registry {
	t.Helper()
	root := t.TempDir()
	for _, slug := range slugs {
		dir := filepath.Join(root, slug)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		meta := `{
			"slug": "` + slug + `", "title": "` + slug + `", "type": "shortform",
			"difficulty": "easy", "language": "none",
			"shortformConfig": {"expectedAnswer": "x"}
		}`
		if err := os.WriteFile(filepath.Join(dir, kata.MetaFileName), []byte(meta), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	reg, err := registry.Open(root)
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func testBrowser(t *testing.T, progress store.ProgressRepo, slugs ...string) *BrowserScreen {
	t.Helper()
	reg := testRegistry(t, slugs...)
	deps := practice.Deps{
		Engine:   engine.New(engine.Config{}),
		Registry: reg,
	}
	return New(deps, progress)
}

func TestNavigationClampsToList(t *testing.T) {
	s := testBrowser(t, nil, "alpha", "beta", "gamma")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('k'))
	if s.selected != 0 {
		t.Errorf("up at top moved cursor to %d", s.selected)
	}

	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(keyPress('j'))
	_ = scr
	if s.selected != 2 {
		t.Errorf("cursor = %d, want clamped to last entry", s.selected)
	}
}

func TestEnterPushesPractice(t *testing.T) {
	s := testBrowser(t, nil, "alpha", "beta")
	s.selected = 1

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	ps, ok := msg.Screen.(*practice.PracticeScreen)
	if !ok {
		t.Fatalf("expected a practice screen, got %T", msg.Screen)
	}
	if ps.Title() != "beta" {
		t.Errorf("pushed kata = %q, want the selected one", ps.Title())
	}
}

func TestEscPops(t *testing.T) {
	s := testBrowser(t, nil, "alpha")
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestProgressMarkersLoad(t *testing.T) {
	progress := &fakeProgress{rows: []store.ProgressSnapshot{
		{Slug: "alpha", BestScore: 100, Attempts: 2, Completed: true},
	}}
	s := testBrowser(t, progress, "alpha", "beta")

	msg := s.Init()()
	s.Update(msg)

	if len(s.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(s.rows))
	}
	if !s.rows["alpha"].Completed {
		t.Error("alpha should be marked completed")
	}

	view := s.View(100, 24)
	if view == "" {
		t.Error("expected non-empty view")
	}
}

func TestProgressErrorShown(t *testing.T) {
	progress := &fakeProgress{err: errors.New("db locked")}
	s := testBrowser(t, progress, "alpha")

	msg := s.Init()()
	s.Update(msg)

	if s.errMsg != "db locked" {
		t.Errorf("errMsg = %q, want the repo error", s.errMsg)
	}
}

func TestRescanPicksUpNewKata(t *testing.T) {
	reg := testRegistry(t, "alpha")
	deps := practice.Deps{
		Engine:   engine.New(engine.Config{}),
		Registry: reg,
	}
	s := New(deps, nil)

	if len(s.katas) != 1 {
		t.Fatalf("katas = %d, want 1", len(s.katas))
	}

	dir, _ := reg.Dir("alpha")
	newDir := filepath.Join(filepath.Dir(dir), "zeta")
	if err := os.MkdirAll(newDir, 0o755); err != nil {
		t.Fatal(err)
	}
	meta := `{
		"slug": "zeta", "title": "zeta", "type": "shortform",
		"difficulty": "easy", "language": "none",
		"shortformConfig": {"expectedAnswer": "x"}
	}`
	if err := os.WriteFile(filepath.Join(newDir, kata.MetaFileName), []byte(meta), 0o644); err != nil {
		t.Fatal(err)
	}

	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	s.Update(cmd())

	if len(s.katas) != 2 {
		t.Errorf("katas = %d after rescan, want 2", len(s.katas))
	}
}

func TestEmptyCatalogView(t *testing.T) {
	root := t.TempDir()
	reg, err := registry.Open(root)
	if err != nil {
		t.Fatal(err)
	}
	s := New(practice.Deps{Engine: engine.New(engine.Config{}), Registry: reg}, nil)

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected a hint for an empty catalog")
	}
}
