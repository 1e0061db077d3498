package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordInt(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int
		wantOK bool
	}{
		{
			name:   "int",
			value:  5,
			want:   5,
			wantOK: true,
		},
		{
			name:   "float64 from json",
			value:  float64(5),
			want:   5,
			wantOK: true,
		},
		{
			name:   "uint64 from cbor",
			value:  uint64(5),
			want:   5,
			wantOK: true,
		},
		{
			name:   "int64 from cbor",
			value:  int64(-5),
			want:   -5,
			wantOK: true,
		},
		{
			name:   "string is not a number",
			value:  "5",
			wantOK: false,
		},
		{
			name:   "absent",
			value:  nil,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{}
			if tt.value != nil {
				rec["n"] = tt.value
			}
			got, ok := rec.Int("n")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordVersion(t *testing.T) {
	assert.Equal(t, 0, Record{}.Version())
	assert.Equal(t, 1, Record{"version": float64(1)}.Version())
	assert.Equal(t, 2, Record{"version": uint64(2)}.Version())
}

func TestRecordTime(t *testing.T) {
	rec := Record{"time": "2024-03-15 09:30"}
	got, err := rec.Time()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15 09:30", got.Format(TimeFormat))

	_, err = Record{}.Time()
	assert.Error(t, err)
	_, err = Record{"time": "yesterday"}.Time()
	assert.Error(t, err)
}

func TestRecordClone(t *testing.T) {
	rec := Record{
		"inventory": map[string]any{"potion": 3},
		"monsters":  []any{map[string]any{"slug": "pidgey"}},
	}
	clone := rec.Clone()

	inventory, ok := clone.Map("inventory")
	require.True(t, ok)
	inventory["potion"] = 99
	monsters, ok := clone.Slice("monsters")
	require.True(t, ok)
	monster, ok := AsRecord(monsters[0])
	require.True(t, ok)
	monster["slug"] = "rattata"

	original, _ := rec.Map("inventory")
	potions, _ := original.Int("potion")
	assert.Equal(t, 3, potions)
	originalMonsters, _ := rec.Slice("monsters")
	originalMonster, _ := AsRecord(originalMonsters[0])
	slug, _ := originalMonster.String("slug")
	assert.Equal(t, "pidgey", slug)
}
