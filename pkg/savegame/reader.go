package savegame

import (
	"context"

	"github.com/cbodonnell/saveslot/pkg/log"
	"github.com/cbodonnell/saveslot/pkg/savegame/record"
	"github.com/cbodonnell/saveslot/pkg/savegame/store"
)

type readResult int

const (
	readFound readResult = iota
	readNotFound
	readCorrupt
)

// readRecord reads a slot's raw bytes and tries each codec in order. A
// decode failure with one codec is not corruption by itself; only when
// every codec rejects the bytes is the slot corrupt. Read failures other
// than not-found are conflated with absence: the slot simply cannot be
// offered.
func (m *Manager) readRecord(ctx context.Context, slot int) (record.Record, readResult) {
	data, err := m.store.Read(ctx, slot)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, readNotFound
		}
		log.Error("failed to read slot %d: %v", slot, err)
		return nil, readNotFound
	}
	for _, c := range m.decoders {
		rec, err := c.Decode(data)
		if err != nil {
			log.Debug("cannot decode slot %d as %s: %v", slot, c.Name(), err)
			continue
		}
		return rec, readFound
	}
	return nil, readCorrupt
}
