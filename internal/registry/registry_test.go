package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

func writeKata(t *testing.T, root, slug, meta string) {
	t.Helper()
	dir := filepath.Join(root, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, kata.MetaFileName), []byte(meta), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testCatalog(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeKata(t, root, "two-sum", `{
		"slug": "two-sum", "title": "Two Sum", "type": "code",
		"difficulty": "easy", "language": "python", "tags": ["arrays"]
	}`)
	writeKata(t, root, "lru-cache", `{
		"slug": "lru-cache", "title": "LRU Cache", "type": "code",
		"difficulty": "hard", "language": "python", "tags": ["design"]
	}`)
	writeKata(t, root, "big-o-lookup", `{
		"slug": "big-o-lookup", "title": "Hash Lookup Complexity", "type": "shortform",
		"difficulty": "easy", "language": "none",
		"shortformConfig": {"expectedAnswer": "O(1)"}
	}`)
	return root
}

func TestOpen_LoadsCatalogSorted(t *testing.T) {
	r, err := Open(testCatalog(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if r.Count() != 3 {
		t.Fatalf("count = %d, want 3", r.Count())
	}

	list := r.List()
	want := []string{"big-o-lookup", "lru-cache", "two-sum"}
	for i, slug := range want {
		if list[i].Slug != slug {
			t.Errorf("list[%d].Slug = %q, want %q", i, list[i].Slug, slug)
		}
	}
}

func TestOpen_SkipsMalformedKata(t *testing.T) {
	root := testCatalog(t)
	writeKata(t, root, "broken", `{"slug": "broken"}`) // missing required fields

	r, err := Open(root)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if r.Count() != 3 {
		t.Errorf("count = %d, want 3 (broken kata skipped)", r.Count())
	}
	if len(r.LoadErrors()) != 1 {
		t.Errorf("load errors = %d, want 1", len(r.LoadErrors()))
	}
}

func TestOpen_IgnoresNonKataDirs(t *testing.T) {
	root := testCatalog(t)
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("notes"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(root)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if r.Count() != 3 {
		t.Errorf("count = %d, want 3", r.Count())
	}
	if len(r.LoadErrors()) != 0 {
		t.Errorf("load errors = %v, want none", r.LoadErrors())
	}
}

func TestGet(t *testing.T) {
	r, err := Open(testCatalog(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	k, ok := r.Get("lru-cache")
	if !ok {
		t.Fatal("lru-cache not found")
	}
	if k.Title != "LRU Cache" {
		t.Errorf("title = %q, want LRU Cache", k.Title)
	}

	if _, ok := r.Get("nope"); ok {
		t.Error("unknown slug should not be found")
	}
}

func TestSelectNext_ExcludesCurrent(t *testing.T) {
	r, err := Open(testCatalog(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	r.intn = func(n int) int { return 0 }

	for range 10 {
		k, err := r.SelectNext("big-o-lookup", kata.Filters{})
		if err != nil {
			t.Fatalf("SelectNext failed: %v", err)
		}
		if k == nil {
			t.Fatal("SelectNext returned nil with candidates available")
		}
		if k.Slug == "big-o-lookup" {
			t.Fatal("SelectNext returned the current kata")
		}
	}
}

func TestSelectNext_AppliesFilters(t *testing.T) {
	r, err := Open(testCatalog(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	r.intn = func(n int) int { return 0 }

	k, err := r.SelectNext("two-sum", kata.Filters{Difficulties: []kata.Difficulty{kata.DifficultyHard}})
	if err != nil {
		t.Fatalf("SelectNext failed: %v", err)
	}
	if k == nil || k.Slug != "lru-cache" {
		t.Errorf("got %v, want lru-cache", k)
	}
}

func TestSelectNext_ExhaustedReturnsNil(t *testing.T) {
	r, err := Open(testCatalog(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Only hard kata is lru-cache; excluding it leaves nothing.
	k, err := r.SelectNext("lru-cache", kata.Filters{Difficulties: []kata.Difficulty{kata.DifficultyHard}})
	if err != nil {
		t.Fatalf("SelectNext failed: %v", err)
	}
	if k != nil {
		t.Errorf("got %v, want nil on exhaustion", k)
	}
}

func TestSelectNext_EmptyCatalog(t *testing.T) {
	r, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := r.SelectNext("", kata.Filters{}); err == nil {
		t.Error("expected ErrEmptyCatalog")
	}
}

func TestReload_PicksUpNewKata(t *testing.T) {
	root := testCatalog(t)
	r, err := Open(root)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	writeKata(t, root, "fizzbuzz", `{
		"slug": "fizzbuzz", "title": "FizzBuzz", "type": "code",
		"difficulty": "easy", "language": "go"
	}`)
	if err := r.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if r.Count() != 4 {
		t.Errorf("count after reload = %d, want 4", r.Count())
	}
}
