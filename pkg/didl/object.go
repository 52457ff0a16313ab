package didl

// Variant identifies which object-model shape a DIDL class resolves to.
type Variant string

const (
	VariantObject            Variant = "object"
	VariantItem              Variant = "item"
	VariantContainer         Variant = "container"
	VariantTrack             Variant = "musicTrack"
	VariantAlbum             Variant = "musicAlbum"
	VariantArtist            Variant = "musicArtist"
	VariantGenre             Variant = "musicGenre"
	VariantComposer          Variant = "composer"
	VariantPlaylistContainer Variant = "playlistContainer"
	VariantAudioBroadcast    Variant = "audioBroadcast"
)

// Object is a single DIDL-Lite item or container in typed form.
type Object struct {
	ID         string
	ParentID   string
	Restricted bool
	Title      string

	// ItemClass is the verbatim upnp:class text from the source document.
	// It is preserved even when resolution degraded to an ancestor variant.
	ItemClass string

	// Variant is the object-model shape resolution chose for ItemClass.
	Variant Variant

	// Synthesized reports whether the descriptor behind Variant was created
	// on demand for an unregistered vendor class path.
	Synthesized bool

	// Resources holds the media locators in document order.
	Resources []Resource

	// Properties carries the remaining descriptive child elements keyed by
	// local element name (artist, album, genre, albumArtURI, ...).
	Properties map[string]string

	// DeviceObject is the value produced by the injected class-to-device
	// bridge for this object's class.
	DeviceObject any
}

// Artist returns the upnp:artist property, if present.
func (o Object) Artist() string { return o.Properties["artist"] }

// Album returns the upnp:album property, if present.
func (o Object) Album() string { return o.Properties["album"] }

// Genre returns the upnp:genre property, if present.
func (o Object) Genre() string { return o.Properties["genre"] }

// Creator returns the dc:creator property, if present.
func (o Object) Creator() string { return o.Properties["creator"] }

// AlbumArtURI returns the upnp:albumArtURI property, if present.
func (o Object) AlbumArtURI() string { return o.Properties["albumArtURI"] }

// OriginalTrackNumber returns the upnp:originalTrackNumber property, if
// present, as its raw text.
func (o Object) OriginalTrackNumber() string { return o.Properties["originalTrackNumber"] }
