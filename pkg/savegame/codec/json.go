package codec

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/saveslot/pkg/savegame/record"
)

const NameJSON = "json"

// JSONCodec writes records as pretty-printed JSON. The output is
// self-describing and only needs to round-trip semantically, not
// byte-for-byte.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return NameJSON
}

func (JSONCodec) Encode(rec record.Record) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return nil, &EncodeError{Codec: NameJSON, Err: err}
	}
	return data, nil
}

func (JSONCodec) Decode(data []byte) (record.Record, error) {
	var rec record.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &DecodeError{Codec: NameJSON, Err: err}
	}
	if rec == nil {
		return nil, &DecodeError{Codec: NameJSON, Err: fmt.Errorf("not an object")}
	}
	return rec, nil
}
