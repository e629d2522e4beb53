package glyph

import "maps"

// Registry maps normalized glyph names to codepoint values.
//
// Registering a name twice keeps the last codepoint. A Registry belongs to a
// single run and is not safe for concurrent use.
type Registry struct {
	glyphs     map[string]string
	overwrites int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{glyphs: make(map[string]string)}
}

// Register binds name to codepoint, replacing any earlier binding.
func (r *Registry) Register(name, codepoint string) {
	key := NormalizeKey(name)
	if _, ok := r.glyphs[key]; ok {
		r.overwrites++
	}
	r.glyphs[key] = codepoint
}

// Lookup returns the codepoint registered for name.
func (r *Registry) Lookup(name string) (string, bool) {
	codepoint, ok := r.glyphs[NormalizeKey(name)]
	return codepoint, ok
}

// Len reports the number of distinct glyphs.
func (r *Registry) Len() int {
	return len(r.glyphs)
}

// Overwrites reports how many registrations replaced an existing binding.
func (r *Registry) Overwrites() int {
	return r.overwrites
}

// Entries returns a copy of the normalized name to codepoint mapping.
func (r *Registry) Entries() map[string]string {
	return maps.Clone(r.glyphs)
}
