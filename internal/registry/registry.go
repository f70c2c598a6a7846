// Package registry maintains the on-disk kata catalog: one directory per
// kata under a common root, each holding a meta.json.
package registry

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

// ErrEmptyCatalog is returned by queries against a registry that loaded
// zero katas.
var ErrEmptyCatalog = errors.New("kata catalog is empty")

// Registry is an in-memory view of the kata directories under root.
// Reload replaces the view atomically; readers never see a half-loaded
// catalog.
type Registry struct {
	root string

	mu        sync.RWMutex
	katas     []*kata.Kata
	bySlug    map[string]*kata.Kata
	dirBySlug map[string]string
	loadErrs  []error

	// intn picks a random index; replaced in tests for determinism.
	intn func(n int) int
}

// Open scans root and loads every kata directory found there.
// Directories without a meta.json are ignored. Directories with a malformed
// meta.json are skipped and reported via LoadErrors, so one broken kata
// never hides the rest of the catalog.
func Open(root string) (*Registry, error) {
	r := &Registry{
		root: root,
		intn: rand.IntN,
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload rescans the root directory and replaces the catalog.
func (r *Registry) Reload() error {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return fmt.Errorf("read kata root: %w", err)
	}

	var (
		katas    []*kata.Kata
		loadErrs []error
	)
	bySlug := make(map[string]*kata.Kata)
	dirBySlug := make(map[string]string)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.root, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, kata.MetaFileName)); err != nil {
			continue
		}
		k, err := kata.Load(dir)
		if err != nil {
			loadErrs = append(loadErrs, err)
			continue
		}
		if _, dup := bySlug[k.Slug]; dup {
			loadErrs = append(loadErrs, fmt.Errorf("kata %s: duplicate slug %q", dir, k.Slug))
			continue
		}
		bySlug[k.Slug] = k
		dirBySlug[k.Slug] = dir
		katas = append(katas, k)
	}

	sort.Slice(katas, func(i, j int) bool { return katas[i].Slug < katas[j].Slug })

	r.mu.Lock()
	r.katas = katas
	r.bySlug = bySlug
	r.dirBySlug = dirBySlug
	r.loadErrs = loadErrs
	r.mu.Unlock()
	return nil
}

// Dir returns the directory a kata was loaded from.
func (r *Registry) Dir(slug string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dir, ok := r.dirBySlug[slug]
	return dir, ok
}

// List returns all katas sorted by slug. The returned slice is a copy.
func (r *Registry) List() []*kata.Kata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*kata.Kata, len(r.katas))
	copy(out, r.katas)
	return out
}

// Get looks up a kata by slug.
func (r *Registry) Get(slug string) (*kata.Kata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.bySlug[slug]
	return k, ok
}

// Count returns the number of loaded katas.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.katas)
}

// LoadErrors returns the per-kata failures from the last scan.
func (r *Registry) LoadErrors() []error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]error, len(r.loadErrs))
	copy(out, r.loadErrs)
	return out
}

// SelectNext picks a random kata matching the filters, excluding
// currentSlug so the learner never gets the kata they just finished.
// Returns (nil, nil) when the filters exhaust the catalog; an error means
// the registry itself is unusable, not that nothing matched.
func (r *Registry) SelectNext(currentSlug string, f kata.Filters) (*kata.Kata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.katas) == 0 {
		return nil, ErrEmptyCatalog
	}

	var candidates []*kata.Kata
	for _, k := range r.katas {
		if k.Slug == currentSlug {
			continue
		}
		if !f.Match(k) {
			continue
		}
		candidates = append(candidates, k)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[r.intn(len(candidates))], nil
}
