// Package migrate upgrades save records written under older schema
// versions to the current one.
package migrate

import (
	"strings"

	"github.com/cbodonnell/saveslot/pkg/savegame/record"
)

// CurrentVersion is the schema version stamped on every record the save
// subsystem writes. Records with no version field are version 0.
const CurrentVersion = 1

// A rule upgrades a record in place from its keyed version to the next.
type rule func(rec record.Record)

var rules = map[int]rule{
	0: upgradeV0,
}

// Upgrade applies every rule needed to bring rec to CurrentVersion and
// returns it. Upgrading an already-current record is a no-op, so Upgrade
// is idempotent. Records missing fields are treated as having empty
// defaults; Upgrade never fails.
func Upgrade(rec record.Record) record.Record {
	for v := rec.Version(); v < CurrentVersion; v++ {
		r, ok := rules[v]
		if !ok {
			break
		}
		r(rec)
		rec[record.FieldVersion] = v + 1
	}
	return rec
}

// upgradeV0 drops the type prefix that pre-versioning saves carried on
// item keys and monster slugs, e.g. "item_potion" becomes "potion". The
// rename covers the player inventory, the chest's items, and both monster
// lists. An absent chest stays absent.
func upgradeV0(rec record.Record) {
	inventory, _ := rec.Map("inventory")
	rec["inventory"] = stripKeys(inventory)
	fixSlugs(rec)

	if chest, ok := rec.Map("storage"); ok {
		items, _ := chest.Map("items")
		chest["items"] = stripKeys(items)
		fixSlugs(chest)
	}
}

// stripKeys renames every key by dropping its prefix. Quantities are
// preserved unchanged.
func stripKeys(items record.Record) record.Record {
	out := make(record.Record, len(items))
	for k, v := range items {
		out[stripPrefix(k)] = v
	}
	return out
}

func fixSlugs(rec record.Record) {
	monsters, _ := rec.Slice("monsters")
	for _, m := range monsters {
		monster, ok := record.AsRecord(m)
		if !ok {
			continue
		}
		if slug, ok := monster.String("slug"); ok {
			monster["slug"] = stripPrefix(slug)
		}
	}
}

// stripPrefix removes everything up to and including the first underscore.
// Keys without an underscore are left unchanged.
func stripPrefix(key string) string {
	if i := strings.Index(key, "_"); i >= 0 {
		return key[i+1:]
	}
	return key
}
