package didl

import (
	"strings"
	"sync"
)

// rootClass is the top of the UPnP class taxonomy. Its descriptor is always
// present, making Resolve total.
const rootClass = "object"

// Descriptor maps a dotted UPnP class path onto an object-model variant.
type Descriptor struct {
	ClassPath   string
	Variant     Variant
	Synthesized bool
}

// builtinClasses is the fixed table for the UPnP AV taxonomy in use.
var builtinClasses = map[string]Variant{
	"object":                               VariantObject,
	"object.item":                          VariantItem,
	"object.item.audioItem":                VariantItem,
	"object.item.audioItem.musicTrack":     VariantTrack,
	"object.item.audioItem.audioBroadcast": VariantAudioBroadcast,
	"object.container":                     VariantContainer,
	"object.container.album":               VariantAlbum,
	"object.container.album.musicAlbum":    VariantAlbum,
	"object.container.person":              VariantContainer,
	"object.container.person.musicArtist":  VariantArtist,
	"object.container.person.composer":     VariantComposer,
	"object.container.genre":               VariantGenre,
	"object.container.genre.musicGenre":    VariantGenre,
	"object.container.playlistContainer":   VariantPlaylistContainer,
}

// Registry resolves dotted class paths to descriptors. Unknown vendor paths
// degrade to the nearest registered ancestor and are memoized as synthesized
// descriptors for the life of the process.
type Registry struct {
	mu    sync.RWMutex
	table map[string]Descriptor
}

// NewRegistry creates a registry populated with the built-in class table.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Init()
	return r
}

// Init idempotently populates the built-in class table. Descriptors already
// in the table, including synthesized ones from earlier Resolve calls, are
// left untouched.
func (r *Registry) Init() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.table == nil {
		r.table = make(map[string]Descriptor, len(builtinClasses))
	}
	for path, variant := range builtinClasses {
		if _, ok := r.table[path]; !ok {
			r.table[path] = Descriptor{ClassPath: path, Variant: variant}
		}
	}
}

// Reset drops all synthesized descriptors, restoring the built-in table.
// Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.table = nil
	r.mu.Unlock()
	r.Init()
}

// Resolve returns the descriptor for classPath. An exact match wins
// outright. Otherwise the dotted path is walked upward, stripping trailing
// segments, and a synthesized descriptor carrying the nearest registered
// ancestor's variant is memoized under the full path for future lookups.
// Resolve never fails: the root "object" descriptor is the final fallback.
func (r *Registry) Resolve(classPath string) Descriptor {
	r.mu.RLock()
	d, ok := r.table[classPath]
	r.mu.RUnlock()
	if ok {
		return d
	}

	base := Descriptor{ClassPath: rootClass, Variant: VariantObject}
	for p := parentPath(classPath); p != ""; p = parentPath(p) {
		r.mu.RLock()
		ancestor, ok := r.table[p]
		r.mu.RUnlock()
		if ok {
			base = ancestor
			break
		}
	}

	synth := Descriptor{ClassPath: classPath, Variant: base.Variant, Synthesized: true}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.table[classPath]; ok {
		// Lost a race with a concurrent resolver; keep its descriptor.
		return existing
	}
	r.table[classPath] = synth
	return synth
}

func parentPath(p string) string {
	i := strings.LastIndexByte(p, '.')
	if i < 0 {
		return ""
	}
	return p[:i]
}
