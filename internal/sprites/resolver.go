// Package sprites resolves species keys to concrete sprite assets
// through a local-index-first fallback chain, backed by single-flight
// cached index loads.
package sprites

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"tourney-graphics/internal/api"
)

// AssetRef points at a resolved sprite: a local filename or a remote
// URL, whichever the chain hit first. Both empty means unresolved and
// the renderer shows a placeholder.
type AssetRef struct {
	Local  string `json:"local,omitempty"`
	Remote string `json:"remote,omitempty"`
}

func (a AssetRef) Empty() bool { return a.Local == "" && a.Remote == "" }

// DexFetcher is the remote metadata dependency of the resolver.
type DexFetcher interface {
	FetchDexIndex(ctx context.Context, indexURL string) ([]api.DexEntry, error)
}

// Resolver owns the two species index caches. Each index loads once
// and is then immutable; concurrent callers during the load share the
// single in-flight fetch, and a failed load caches nothing.
type Resolver struct {
	assetDir string
	dexURL   string
	dex      DexFetcher
	logger   zerolog.Logger

	flight singleflight.Group

	mu     sync.RWMutex
	local  map[string]string // species key -> filename
	remote map[string]int    // species name -> sprite id
}

func NewResolver(assetDir, dexURL string, dex DexFetcher, logger zerolog.Logger) *Resolver {
	return &Resolver{assetDir: assetDir, dexURL: dexURL, dex: dex, logger: logger}
}

// Reset drops both cached indices so the next resolution reloads them.
func (r *Resolver) Reset() {
	r.mu.Lock()
	r.local = nil
	r.remote = nil
	r.mu.Unlock()
}

// Warm loads both indices concurrently. Failures are reported but leave
// the resolver usable; resolution degrades per key instead.
func (r *Resolver) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := r.localIndex()
		return err
	})
	g.Go(func() error {
		_, err := r.remoteIndex(ctx)
		return err
	})
	return g.Wait()
}

// Resolve maps a species key to an asset reference. Resolution order,
// first hit wins:
//
//  1. exact match in the local asset index
//  2. the recombined "base (form)" variant in the local index
//  3. the base name alone in the local index, unless the form is in the
//     curated distinct-form set
//  4. the remote metadata index: exact key, "base form" reconstruction,
//     then key with underscores for spaces
//
// A miss is never fatal: it logs a diagnostic and returns an empty
// reference.
func (r *Resolver) Resolve(ctx context.Context, key string) AssetRef {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return AssetRef{}
	}

	base, form := splitKey(key)

	if local, err := r.localIndex(); err == nil {
		if name, ok := local[key]; ok {
			return AssetRef{Local: name}
		}
		if form != "" {
			if name, ok := local[base+" ("+form+")"]; ok {
				return AssetRef{Local: name}
			}
			if !IsDistinctForm(form) {
				if name, ok := local[base]; ok {
					return AssetRef{Local: name}
				}
			}
		}
	} else {
		r.logger.Warn().Err(err).Msg("local asset index unavailable")
	}

	remote, err := r.remoteIndex(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("remote dex index unavailable")
		return AssetRef{}
	}
	for _, candidate := range remoteCandidates(key, base, form) {
		if id, ok := remote[candidate]; ok {
			return AssetRef{Remote: RemoteSpriteURL(id)}
		}
	}

	r.logger.Warn().Str("key", key).Msg("species did not resolve, renderer will use placeholder")
	return AssetRef{}
}

func remoteCandidates(key, base, form string) []string {
	candidates := []string{key}
	if form != "" {
		candidates = append(candidates, base+" "+form)
	}
	candidates = append(candidates, strings.ReplaceAll(key, " ", "_"))
	return candidates
}

// splitKey breaks "base (form)" into its parts; a key without a form
// separator comes back unchanged with an empty form.
func splitKey(key string) (base, form string) {
	open := strings.Index(key, "(")
	if open < 0 {
		return key, ""
	}
	base = strings.TrimSpace(key[:open])
	form = strings.TrimSpace(strings.TrimSuffix(key[open+1:], ")"))
	return base, form
}

func (r *Resolver) localIndex() (map[string]string, error) {
	r.mu.RLock()
	cached := r.local
	r.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := r.flight.Do("local", func() (any, error) {
		// a caller that missed the fast path may arrive after the load
		// finished; don't read the directory again
		r.mu.RLock()
		loaded := r.local
		r.mu.RUnlock()
		if loaded != nil {
			return loaded, nil
		}

		entries, err := os.ReadDir(r.assetDir)
		if err != nil {
			return nil, err
		}
		index := make(map[string]string, len(entries))
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			ext := filepath.Ext(name)
			if !strings.EqualFold(ext, ".png") {
				continue
			}
			stem := strings.TrimSuffix(name, ext)
			index[strings.ToLower(stem)] = name
		}
		r.mu.Lock()
		r.local = index
		r.mu.Unlock()
		r.logger.Info().Int("assets", len(index)).Str("dir", r.assetDir).Msg("local asset index loaded")
		return index, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]string), nil
}

func (r *Resolver) remoteIndex(ctx context.Context) (map[string]int, error) {
	r.mu.RLock()
	cached := r.remote
	r.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := r.flight.Do("remote", func() (any, error) {
		r.mu.RLock()
		loaded := r.remote
		r.mu.RUnlock()
		if loaded != nil {
			return loaded, nil
		}

		entries, err := r.dex.FetchDexIndex(ctx, r.dexURL)
		if err != nil {
			return nil, err
		}
		index := make(map[string]int, len(entries))
		for _, e := range entries {
			index[strings.ToLower(e.Name)] = e.ID
		}
		r.mu.Lock()
		r.remote = index
		r.mu.Unlock()
		r.logger.Info().Int("entries", len(index)).Msg("remote dex index loaded")
		return index, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]int), nil
}
