package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/cbodonnell/saveslot/pkg/savegame"
	"github.com/cbodonnell/saveslot/pkg/savegame/codec"
	"github.com/cbodonnell/saveslot/pkg/savegame/store"
)

const usage = `Usage: savetool [flags] <command>

Commands:
  latest          print the slot holding the most recent save
  show <slot>     print a slot's record, upgraded to the current schema
  migrate <slot>  rewrite a slot at the current schema version

Flags:
`

func main() {
	savePath := flag.String("save-path", "saves/slot", "Base path for slot files: <base path><slot>.save")
	codecName := flag.String("codec", codec.NameCBOR, "Save encoding used when rewriting (cbor or json)")
	slotCount := flag.Int("slots", savegame.DefaultSlotCount, "Number of slots scanned for the latest save")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	slotStore, err := store.NewFileStore(*savePath)
	if err != nil {
		fatalf("failed to open save store: %v", err)
	}
	defer slotStore.Close(ctx)

	manager := savegame.NewManager(savegame.NewManagerOptions{
		Store:     slotStore,
		Codec:     codec.Select(*codecName),
		SlotCount: *slotCount,
	})

	switch flag.Arg(0) {
	case "latest":
		slot, ok := manager.LatestSlot(ctx)
		if !ok {
			fmt.Println("no saves found")
			os.Exit(1)
		}
		fmt.Println(slot)
	case "show":
		slot := slotArg()
		rec := manager.Load(ctx, slot)
		if rec == nil {
			fatalf("slot %d is empty", slot)
		}
		out, err := json.MarshalIndent(rec, "", "    ")
		if err != nil {
			fatalf("failed to render record: %v", err)
		}
		fmt.Println(string(out))
	case "migrate":
		slot := slotArg()
		ok, err := manager.Migrate(ctx, slot)
		if err != nil {
			fatalf("failed to migrate slot %d: %v", slot, err)
		}
		if !ok {
			fatalf("slot %d has no readable save", slot)
		}
		fmt.Printf("migrated slot %d\n", slot)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func slotArg() int {
	slot, err := strconv.Atoi(flag.Arg(1))
	if err != nil || slot < 1 {
		fatalf("a positive slot number is required")
	}
	return slot
}

func fatalf(format string, v ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
	os.Exit(1)
}
