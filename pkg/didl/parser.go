package didl

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/didlkit/pkg/cache"
	"github.com/dmitrymomot/didlkit/pkg/logger"
)

// Namespace URIs used by DIDL-Lite documents.
const (
	nsDIDL = "urn:schemas-upnp-org:metadata-1-0/DIDL-Lite/"
	nsDC   = "http://purl.org/dc/elements/1.1/"
	nsUPnP = "urn:schemas-upnp-org:metadata-1-0/upnp/"
)

// ClassToDeviceObjectFunc bridges a resolved DIDL class string to the
// surrounding system's device-object value. The verbatim upnp:class text is
// passed through unchanged.
type ClassToDeviceObjectFunc func(itemClass string) (any, error)

// Parser turns DIDL-Lite text into typed objects. Whole-document results are
// memoized keyed by the exact input text, so a repeated byte-identical query
// returns without re-parsing.
type Parser struct {
	classToDevice ClassToDeviceObjectFunc
	registry      *Registry
	cache         cache.Cache
	log           *slog.Logger
	id            string
}

// ParserOption configures a Parser at construction time.
type ParserOption func(*Parser)

// WithLogger sets the diagnostics logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) ParserOption {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// WithRegistry substitutes the class registry, letting several parsers share
// one synthesized-descriptor table.
func WithRegistry(r *Registry) ParserOption {
	return func(p *Parser) {
		if r != nil {
			p.registry = r
		}
	}
}

// WithCache substitutes the document cache.
func WithCache(c cache.Cache) ParserOption {
	return func(p *Parser) {
		if c != nil {
			p.cache = c
		}
	}
}

// NewParser creates a parser. The classToDevice bridge is required; passing
// nil fails fast with ErrClassBridgeNotSet.
func NewParser(classToDevice ClassToDeviceObjectFunc, opts ...ParserOption) (*Parser, error) {
	if classToDevice == nil {
		return nil, ErrClassBridgeNotSet
	}
	p := &Parser{
		classToDevice: classToDevice,
		registry:      NewRegistry(),
		cache:         cache.New(),
		log:           slog.New(slog.DiscardHandler),
		id:            uuid.NewString(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// didlDocument is the wire shape of a DIDL-Lite fragment. Children are
// captured generically so illegal element names can be reported instead of
// silently dropped.
type didlDocument struct {
	XMLName  xml.Name
	Children []didlNode `xml:",any"`
}

type didlNode struct {
	XMLName    xml.Name
	ID         string       `xml:"id,attr"`
	ParentID   string       `xml:"parentID,attr"`
	Restricted string       `xml:"restricted,attr"`
	Resources  []resElement `xml:"res"`
	Fields     []didlField  `xml:",any"`
}

type didlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Parse turns a DIDL-Lite document into typed objects. A strict XML decode
// is attempted first; on failure the input is sanitized and decoded exactly
// once more, and a second failure propagates the decoder's error. Any
// metadata error aborts the whole document; there is no partial-result mode.
func (p *Parser) Parse(xmlText string) ([]Object, error) {
	if p.classToDevice == nil {
		return nil, ErrClassBridgeNotSet
	}

	cacheArgs := []any{xmlText}
	if v, ok := p.cache.Get(cacheArgs, nil); ok {
		if objects, ok := v.([]Object); ok {
			return objects, nil
		}
	}

	doc, err := decodeDocument(xmlText)
	if err != nil {
		doc, err = decodeDocument(sanitizeXML(xmlText))
		if err != nil {
			return nil, err
		}
	}

	objects := make([]Object, 0, len(doc.Children))
	for _, node := range doc.Children {
		obj, err := p.buildObject(node)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	p.cache.Put(objects, cacheArgs, nil, 0)

	ctx := context.Background()
	if p.log.Enabled(ctx, slog.LevelDebug) {
		p.log.LogAttrs(ctx, slog.LevelDebug, "parsed DIDL-Lite document",
			slog.String("parser_id", p.id),
			logger.InputPreview(preview(xmlText)),
			logger.ObjectCount(len(objects)),
		)
	}
	return objects, nil
}

// ResetCache drops all memoized document parses.
func (p *Parser) ResetCache() {
	p.cache.Clear()
}

func decodeDocument(xmlText string) (didlDocument, error) {
	var doc didlDocument
	if err := xml.Unmarshal([]byte(xmlText), &doc); err != nil {
		return didlDocument{}, err
	}
	return doc, nil
}

func (p *Parser) buildObject(node didlNode) (Object, error) {
	switch node.XMLName.Local {
	case "item", "container":
	default:
		return Object{}, fmt.Errorf("%w: Illegal child element %q in DIDL-Lite document", ErrMetadata, node.XMLName.Local)
	}

	var (
		itemClass string
		title     string
	)
	props := make(map[string]string)
	for _, f := range node.Fields {
		switch {
		case f.XMLName.Space == nsUPnP && f.XMLName.Local == "class":
			itemClass = strings.TrimSpace(f.Value)
		case f.XMLName.Space == nsDC && f.XMLName.Local == "title":
			title = f.Value
		default:
			props[f.XMLName.Local] = f.Value
		}
	}
	if itemClass == "" {
		return Object{}, fmt.Errorf("%w: Missing upnp:class element on %s %q", ErrMetadata, node.XMLName.Local, node.ID)
	}

	desc := p.registry.Resolve(itemClass)

	resources := make([]Resource, 0, len(node.Resources))
	for _, el := range node.Resources {
		res, err := resourceFromElement(el)
		if err != nil {
			return Object{}, err
		}
		resources = append(resources, res)
	}

	deviceObject, err := p.classToDevice(itemClass)
	if err != nil {
		return Object{}, fmt.Errorf("%w: classToDeviceObject failed for %q: %v", ErrMetadata, itemClass, err)
	}

	return Object{
		ID:           node.ID,
		ParentID:     node.ParentID,
		Restricted:   node.Restricted == "1" || node.Restricted == "true",
		Title:        title,
		ItemClass:    itemClass,
		Variant:      desc.Variant,
		Synthesized:  desc.Synthesized,
		Resources:    resources,
		Properties:   props,
		DeviceObject: deviceObject,
	}, nil
}

// previewLen bounds the input excerpt attached to diagnostic records.
const previewLen = 120

func preview(s string) string {
	if len(s) <= previewLen {
		return s
	}
	return s[:previewLen] + "..."
}
