// Package codec centralizes snapshot payload encoding.
//
// Codec selection is a compatibility boundary: snapshot files record the
// codec name in their header, and a file written by an unknown codec cannot
// be decoded.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Snapshot files are self-describing: the codec name stored in their header
// is resolved through this function on load.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
