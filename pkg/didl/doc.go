// Package didl models and parses DIDL-Lite, the XML vocabulary UPnP AV
// devices use to describe content items and containers.
//
// The package maps the open-ended, vendor-extensible namespace of dotted
// class identifiers (for example "object.item.audioItem.musicTrack") onto a
// closed object model, recovers from malformed input, and memoizes
// whole-document parses so repeated identical queries stay cheap.
//
// # Components
//
//   - Registry: resolves dotted class paths to variant descriptors. Unknown
//     vendor paths degrade to the nearest registered ancestor; the resulting
//     synthesized descriptor is memoized for the life of the process.
//   - Resource: the media-locator sub-element of every content object, with
//     strict integer validation for its technical attributes and a permissive
//     default when producers omit protocolInfo.
//   - Parser: DIDL-Lite text in, []Object out. A strict XML decode is retried
//     exactly once after stripping code points XML forbids; whole results are
//     memoized keyed by the exact input text.
//
// # Usage
//
//	p, err := didl.NewParser(func(itemClass string) (any, error) {
//	    return deviceRegistry.ConstructorFor(itemClass), nil
//	})
//	if err != nil {
//	    // classToDeviceObject bridge was not supplied
//	}
//
//	objects, err := p.Parse(metadataXML)
//	for _, obj := range objects {
//	    fmt.Println(obj.Title, obj.ItemClass, obj.Variant)
//	}
//
// Every object keeps the verbatim upnp:class text from the source document in
// ItemClass, independent of which variant was actually constructed; the
// object model never rewrites the protocol's own class claim.
package didl
