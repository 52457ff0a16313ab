package didl

import (
	"errors"
	"fmt"
)

var (
	// ErrMetadata is the kind behind every metadata failure this package
	// raises: missing class identifier, illegal child element, unparseable
	// numeric resource attribute, unset class bridge. Callers match it with
	// errors.Is and inspect the message for the specific condition.
	ErrMetadata = errors.New("DIDL metadata error")

	// ErrClassBridgeNotSet is returned when a Parser is constructed or
	// invoked without the classToDeviceObject capability.
	ErrClassBridgeNotSet = fmt.Errorf("%w: classToDeviceObject function not set", ErrMetadata)
)
