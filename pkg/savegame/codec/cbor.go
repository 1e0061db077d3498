package codec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/cbodonnell/saveslot/pkg/savegame/record"
)

const NameCBOR = "cbor"

// CBORCodec writes records as compact CBOR. Nested mappings decode as
// map[string]any so the migration accessors see the same shapes under
// either codec.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBORCodec() (*CBORCodec, error) {
	enc, err := cbor.EncOptions{}.EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create cbor encode mode: %v", err)
	}
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create cbor decode mode: %v", err)
	}
	return &CBORCodec{enc: enc, dec: dec}, nil
}

func (c *CBORCodec) Name() string {
	return NameCBOR
}

func (c *CBORCodec) Encode(rec record.Record) ([]byte, error) {
	data, err := c.enc.Marshal(rec)
	if err != nil {
		return nil, &EncodeError{Codec: NameCBOR, Err: err}
	}
	return data, nil
}

func (c *CBORCodec) Decode(data []byte) (record.Record, error) {
	var rec record.Record
	if err := c.dec.Unmarshal(data, &rec); err != nil {
		return nil, &DecodeError{Codec: NameCBOR, Err: err}
	}
	if rec == nil {
		return nil, &DecodeError{Codec: NameCBOR, Err: fmt.Errorf("not a map")}
	}
	return rec, nil
}
