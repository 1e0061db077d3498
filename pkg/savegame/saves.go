// Package savegame implements versioned save-game persistence: slot-based
// storage, dual-codec serialization, schema migration, and latest-save
// selection.
package savegame

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/saveslot/pkg/log"
	"github.com/cbodonnell/saveslot/pkg/savegame/codec"
	"github.com/cbodonnell/saveslot/pkg/savegame/migrate"
	"github.com/cbodonnell/saveslot/pkg/savegame/record"
	"github.com/cbodonnell/saveslot/pkg/savegame/store"
)

// DefaultSlotCount is the number of slots scanned for the latest save.
const DefaultSlotCount = 3

// Sentinel field values marking a record that could not be decoded.
const (
	BrokenError      = "Save file corrupted"
	BrokenPlayerName = "BROKEN SAVE!"
)

// Snapshot is an encoded screenshot supplied by an external producer. The
// image payload is opaque to this package; it is stored and returned as is.
type Snapshot struct {
	Image  string
	Width  int
	Height int
}

type Manager struct {
	store     store.Store
	codec     codec.Codec
	decoders  []codec.Codec
	slotCount int
	now       func() time.Time
}

type NewManagerOptions struct {
	// Store persists encoded records.
	Store store.Store
	// Codec encodes records on save. Defaults to the JSON codec. Loads
	// always try every known codec regardless of this setting.
	Codec codec.Codec
	// SlotCount bounds the latest-save scan. Defaults to DefaultSlotCount.
	SlotCount int
}

// NewManager creates a new save Manager.
func NewManager(opts NewManagerOptions) *Manager {
	c := opts.Codec
	if c == nil {
		c = codec.JSONCodec{}
	}
	slotCount := opts.SlotCount
	if slotCount <= 0 {
		slotCount = DefaultSlotCount
	}
	return &Manager{
		store:     opts.Store,
		codec:     c,
		decoders:  codec.Decoders(),
		slotCount: slotCount,
		now:       time.Now,
	}
}

// Save writes a fresh record for slot: the state provider's mapping plus
// the snapshot fields, a save timestamp, and the current schema version.
// The timestamp is always stamped here, never taken from the state
// mapping. Encode and write failures propagate to the caller.
func (m *Manager) Save(ctx context.Context, slot int, state map[string]any, snapshot *Snapshot) error {
	rec := record.Record(state).Clone()
	if snapshot != nil {
		rec[record.FieldScreenshot] = snapshot.Image
		rec[record.FieldScreenshotWidth] = snapshot.Width
		rec[record.FieldScreenshotHeight] = snapshot.Height
	}
	rec[record.FieldTime] = m.now().Format(record.TimeFormat)
	rec[record.FieldVersion] = migrate.CurrentVersion

	data, err := m.codec.Encode(rec)
	if err != nil {
		return err
	}
	if err := m.store.Write(ctx, slot, data); err != nil {
		return fmt.Errorf("failed to write slot %d: %v", slot, err)
	}
	log.Info("saved slot %d (%s)", slot, m.codec.Name())
	return nil
}

// Load reads and upgrades the record in slot. A slot that was never saved
// returns nil; that is an expected, silent case. A slot whose contents
// cannot be decoded returns a sentinel record (see IsBroken) so callers
// can show a diagnostic instead of failing.
func (m *Manager) Load(ctx context.Context, slot int) record.Record {
	rec, res := m.readRecord(ctx, slot)
	switch res {
	case readNotFound:
		return nil
	case readCorrupt:
		log.Error("failed loading save file for slot %d", slot)
		return record.Record{
			"error":       BrokenError,
			"player_name": BrokenPlayerName,
		}
	}
	return migrate.Upgrade(rec)
}

// Migrate rewrites slot at the current schema version using the
// configured codec, preserving the record's save time. It reports whether
// a rewrite happened; missing and corrupt slots are left untouched.
func (m *Manager) Migrate(ctx context.Context, slot int) (bool, error) {
	rec, res := m.readRecord(ctx, slot)
	if res != readFound {
		return false, nil
	}
	rec = migrate.Upgrade(rec)
	data, err := m.codec.Encode(rec)
	if err != nil {
		return false, err
	}
	if err := m.store.Write(ctx, slot, data); err != nil {
		return false, fmt.Errorf("failed to write slot %d: %v", slot, err)
	}
	log.Info("migrated slot %d to version %d (%s)", slot, rec.Version(), m.codec.Name())
	return true, nil
}

// LatestSlot scans slots 1 through the configured slot count and returns
// the one holding the most recent save. Absent slots, corrupt slots, and
// records without a parseable save time are skipped. Equal timestamps
// resolve to the lowest slot index. The second return is false when no
// slot holds a usable save.
func (m *Manager) LatestSlot(ctx context.Context) (int, bool) {
	latest := 0
	var latestTime time.Time
	for slot := 1; slot <= m.slotCount; slot++ {
		rec, res := m.readRecord(ctx, slot)
		if res != readFound {
			continue
		}
		t, err := rec.Time()
		if err != nil {
			log.Debug("slot %d has no usable save time: %v", slot, err)
			continue
		}
		if latest == 0 || t.After(latestTime) {
			latest = slot
			latestTime = t
		}
	}
	if latest == 0 {
		return 0, false
	}
	return latest, true
}

// IsBroken reports whether rec is the sentinel produced for a corrupt
// save file.
func IsBroken(rec record.Record) bool {
	if rec == nil {
		return false
	}
	_, ok := rec["error"]
	return ok
}
