package didl

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// DefaultProtocolInfo is substituted when a res element omits the required
// protocolInfo attribute. Some real-world servers leave it out.
const DefaultProtocolInfo = "http-get:*:*:*"

// Resource is a media locator with its technical attributes. Numeric fields
// are pointers so absence stays distinguishable from zero.
type Resource struct {
	URI          string
	ProtocolInfo string

	ImportURI  string
	Duration   string
	Resolution string
	Protection string

	Size            *int
	Bitrate         *int
	SampleFrequency *int
	BitsPerSample   *int
	NrAudioChannels *int
	ColorDepth      *int
}

// resElement mirrors the wire shape of a res element. Numeric attributes
// stay strings so that presence can be validated separately from parsing.
type resElement struct {
	XMLName         xml.Name `xml:"res"`
	ProtocolInfo    string   `xml:"protocolInfo,attr,omitempty"`
	ImportURI       string   `xml:"importUri,attr,omitempty"`
	Size            string   `xml:"size,attr,omitempty"`
	Duration        string   `xml:"duration,attr,omitempty"`
	Bitrate         string   `xml:"bitrate,attr,omitempty"`
	SampleFrequency string   `xml:"sampleFrequency,attr,omitempty"`
	BitsPerSample   string   `xml:"bitsPerSample,attr,omitempty"`
	NrAudioChannels string   `xml:"nrAudioChannels,attr,omitempty"`
	Resolution      string   `xml:"resolution,attr,omitempty"`
	ColorDepth      string   `xml:"colorDepth,attr,omitempty"`
	Protection      string   `xml:"protection,attr,omitempty"`
	URI             string   `xml:",chardata"`
}

func resourceFromElement(el resElement) (Resource, error) {
	r := Resource{
		URI:          el.URI,
		ProtocolInfo: el.ProtocolInfo,
		ImportURI:    el.ImportURI,
		Duration:     el.Duration,
		Resolution:   el.Resolution,
		Protection:   el.Protection,
	}
	if r.ProtocolInfo == "" {
		r.ProtocolInfo = DefaultProtocolInfo
	}

	numeric := []struct {
		name string
		raw  string
		dst  **int
	}{
		{"size", el.Size, &r.Size},
		{"bitrate", el.Bitrate, &r.Bitrate},
		{"sampleFrequency", el.SampleFrequency, &r.SampleFrequency},
		{"bitsPerSample", el.BitsPerSample, &r.BitsPerSample},
		{"nrAudioChannels", el.NrAudioChannels, &r.NrAudioChannels},
		{"colorDepth", el.ColorDepth, &r.ColorDepth},
	}
	for _, f := range numeric {
		if f.raw == "" {
			continue
		}
		n, err := strconv.Atoi(f.raw)
		if err != nil {
			return Resource{}, fmt.Errorf("%w: res attribute %q is not an integer: %q", ErrMetadata, f.name, f.raw)
		}
		*f.dst = &n
	}
	return r, nil
}

func resourceToElement(r Resource) resElement {
	el := resElement{
		ProtocolInfo: r.ProtocolInfo,
		ImportURI:    r.ImportURI,
		Duration:     r.Duration,
		Resolution:   r.Resolution,
		Protection:   r.Protection,
		URI:          r.URI,
	}
	if el.ProtocolInfo == "" {
		el.ProtocolInfo = DefaultProtocolInfo
	}

	numeric := []struct {
		src *int
		dst *string
	}{
		{r.Size, &el.Size},
		{r.Bitrate, &el.Bitrate},
		{r.SampleFrequency, &el.SampleFrequency},
		{r.BitsPerSample, &el.BitsPerSample},
		{r.NrAudioChannels, &el.NrAudioChannels},
		{r.ColorDepth, &el.ColorDepth},
	}
	for _, f := range numeric {
		if f.src != nil {
			*f.dst = strconv.Itoa(*f.src)
		}
	}
	return el
}

// MarshalXML serializes the resource as a res element with every set
// optional field emitted as an attribute and the URI as element text.
func (r Resource) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "res"}
	start.Attr = nil
	return e.EncodeElement(resourceToElement(r), start)
}

// UnmarshalXML builds the resource from a res element, substituting
// DefaultProtocolInfo when the attribute is absent and rejecting numeric
// attributes that do not parse as integers.
func (r *Resource) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var el resElement
	if err := d.DecodeElement(&el, &start); err != nil {
		return err
	}
	res, err := resourceFromElement(el)
	if err != nil {
		return err
	}
	*r = res
	return nil
}
