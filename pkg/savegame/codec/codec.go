// Package codec implements the serialization codecs for save files: a
// human-readable JSON encoding and a compact CBOR encoding. Slot files
// carry no header distinguishing the two, so readers must try both.
package codec

import (
	"github.com/cbodonnell/saveslot/pkg/log"
	"github.com/cbodonnell/saveslot/pkg/savegame/record"
)

// Codec encodes and decodes save records.
type Codec interface {
	// Name returns the codec identifier used for diagnostics.
	Name() string
	Encode(rec record.Record) ([]byte, error)
	Decode(data []byte) (record.Record, error)
}

// Select resolves a codec name to a Codec. Unknown or unavailable codecs
// fall back to JSON for the lifetime of the returned value; callers are
// expected to resolve once at startup and inject the result.
func Select(name string) Codec {
	switch name {
	case NameCBOR:
		c, err := NewCBORCodec()
		if err != nil {
			log.Warn("cbor codec unavailable, falling back to json: %v", err)
			return JSONCodec{}
		}
		return c
	case NameJSON, "":
		return JSONCodec{}
	default:
		log.Warn("unknown codec %q, falling back to json", name)
		return JSONCodec{}
	}
}

// Decoders returns the decode attempt order for save files: the binary
// codec first, then the textual one. Files on disk may have been written
// under either encoding across versions of the game.
func Decoders() []Codec {
	if c, err := NewCBORCodec(); err == nil {
		return []Codec{c, JSONCodec{}}
	}
	return []Codec{JSONCodec{}}
}
