package metrics

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/libjust/internal/otmetrics"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FromFile loads an OpenType/TrueType font from path and sizes it at pt
// points, returning a Source backed by it.
func FromFile(path string, pt float64) (Source, error) {
	f, err := otmetrics.Load(path)
	if err != nil {
		return nil, err
	}
	return otmetrics.Size(f, pt, 72)
}

// Registry caches sized fonts by name, so callers looking up the same
// font/size pair repeatedly share one Source instance. Unlike the
// teacher registry this one is scoped to a single flat name, dropping
// the style/weight variant matching that nothing in this module
// exercises (see DESIGN.md).
type Registry struct {
	mu    sync.Mutex
	fonts map[string]*otmetrics.Font
	sized map[string]*otmetrics.Metrics
}

var (
	globalOnce     sync.Once
	globalRegistry *Registry
)

// GlobalRegistry is an application-wide singleton font cache.
func GlobalRegistry() *Registry {
	globalOnce.Do(func() { globalRegistry = NewRegistry() })
	return globalRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]*otmetrics.Font),
		sized: make(map[string]*otmetrics.Metrics),
	}
}

// StoreFont registers a parsed font under name, if name is not already
// taken.
func (r *Registry) StoreFont(name string, f *otmetrics.Font) {
	if f == nil {
		T().Errorf("registry cannot store nil font")
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	name = normalize(name)
	if _, ok := r.fonts[name]; !ok {
		T().Debugf("registry stores font %s as %s", f.Name, name)
		r.fonts[name] = f
	}
}

// Source returns a Source for the named font at the given point size,
// falling back to the embedded default font (with an error) if name is
// unknown.
func (r *Registry) Source(name string, pt float64) (Source, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := sizedKey(name, pt)
	if m, ok := r.sized[key]; ok {
		return m, nil
	}
	name = normalize(name)
	if f, ok := r.fonts[name]; ok {
		m, err := otmetrics.Size(f, pt, 72)
		if err != nil {
			return nil, err
		}
		r.sized[key] = m
		return m, nil
	}
	err := errors.New("metrics: font " + name + " not found in registry")
	fbKey := sizedKey("fallback", pt)
	if m, ok := r.sized[fbKey]; ok {
		return m, err
	}
	m, sizeErr := otmetrics.Size(otmetrics.Fallback(), pt, 72)
	if sizeErr != nil {
		return nil, sizeErr
	}
	r.sized[fbKey] = m
	return m, err
}

func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ToLower(name)
}

func sizedKey(name string, pt float64) string {
	return fmt.Sprintf("%s-%.2f", normalize(name), pt)
}
