package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbodonnell/saveslot/pkg/savegame/record"
)

func testRecord() record.Record {
	return record.Record{
		"version":     1,
		"time":        "2024-03-15 09:30",
		"player_name": "Red",
		"inventory": map[string]any{
			"potion": 3,
		},
		"monsters": []any{
			map[string]any{"slug": "rattata", "level": 5},
		},
	}
}

func TestCodecRoundTrip(t *testing.T) {
	cborCodec, err := NewCBORCodec()
	require.NoError(t, err)

	tests := []struct {
		name  string
		codec Codec
	}{
		{
			name:  "json",
			codec: JSONCodec{},
		},
		{
			name:  "cbor",
			codec: cborCodec,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.codec.Encode(testRecord())
			require.NoError(t, err)

			got, err := tt.codec.Decode(data)
			require.NoError(t, err)

			// Codecs widen numeric types differently, so compare
			// through the record accessors.
			assert.Equal(t, 1, got.Version())
			name, _ := got.String("player_name")
			assert.Equal(t, "Red", name)
			savedAt, err := got.Time()
			require.NoError(t, err)
			assert.Equal(t, "2024-03-15 09:30", savedAt.Format(record.TimeFormat))

			inventory, ok := got.Map("inventory")
			require.True(t, ok)
			potions, ok := inventory.Int("potion")
			require.True(t, ok)
			assert.Equal(t, 3, potions)

			monsters, ok := got.Slice("monsters")
			require.True(t, ok)
			require.Len(t, monsters, 1)
			monster, ok := record.AsRecord(monsters[0])
			require.True(t, ok)
			slug, _ := monster.String("slug")
			assert.Equal(t, "rattata", slug)
		})
	}
}

func TestCodecDecodeErrors(t *testing.T) {
	cborCodec, err := NewCBORCodec()
	require.NoError(t, err)

	jsonData, err := JSONCodec{}.Encode(testRecord())
	require.NoError(t, err)
	cborData, err := cborCodec.Encode(testRecord())
	require.NoError(t, err)

	tests := []struct {
		name  string
		codec Codec
		data  []byte
	}{
		{
			name:  "json rejects garbage",
			codec: JSONCodec{},
			data:  []byte("not a save file"),
		},
		{
			name:  "json rejects cbor bytes",
			codec: JSONCodec{},
			data:  cborData,
		},
		{
			name:  "json rejects a bare scalar",
			codec: JSONCodec{},
			data:  []byte("42"),
		},
		{
			name:  "json rejects null",
			codec: JSONCodec{},
			data:  []byte("null"),
		},
		{
			name:  "cbor rejects json bytes",
			codec: cborCodec,
			data:  jsonData,
		},
		{
			name:  "cbor rejects empty input",
			codec: cborCodec,
			data:  []byte{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.codec.Decode(tt.data)
			require.Error(t, err)
			assert.True(t, IsDecodeError(err))
		})
	}
}

func TestCodecEncodeError(t *testing.T) {
	cborCodec, err := NewCBORCodec()
	require.NoError(t, err)

	bad := record.Record{"ch": make(chan int)}
	for _, c := range []Codec{JSONCodec{}, cborCodec} {
		_, err := c.Encode(bad)
		require.Error(t, err)
		assert.True(t, IsEncodeError(err))
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		codecName string
		want      string
	}{
		{
			name:      "cbor",
			codecName: "cbor",
			want:      NameCBOR,
		},
		{
			name:      "json",
			codecName: "json",
			want:      NameJSON,
		},
		{
			name:      "empty defaults to json",
			codecName: "",
			want:      NameJSON,
		},
		{
			name:      "unknown falls back to json",
			codecName: "msgpack",
			want:      NameJSON,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.codecName).Name())
		})
	}
}

func TestDecodersOrder(t *testing.T) {
	decoders := Decoders()
	require.Len(t, decoders, 2)
	assert.Equal(t, NameCBOR, decoders[0].Name())
	assert.Equal(t, NameJSON, decoders[1].Name())
}
