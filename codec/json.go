package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// The most portable, lowest-dependency option. Snapshot payloads are plain
// structs of numeric slices, which JSON handles without caveats.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
//
// This affects newly written snapshots only; existing files are opened by
// resolving the codec name stored in their header.
var Default Codec = GoJSON{}
