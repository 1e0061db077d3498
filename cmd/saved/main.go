package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/saveslot/pkg/api"
	"github.com/cbodonnell/saveslot/pkg/log"
	"github.com/cbodonnell/saveslot/pkg/savegame"
	"github.com/cbodonnell/saveslot/pkg/savegame/codec"
	"github.com/cbodonnell/saveslot/pkg/savegame/store"
)

func main() {
	port := flag.Int("port", 8899, "HTTP port to listen on")
	savePath := flag.String("save-path", "saves/slot", "Base path for slot files: <base path><slot>.save")
	storeKind := flag.String("store", "file", "Slot storage backend (file or sqlite)")
	codecName := flag.String("codec", codec.NameCBOR, "Save encoding (cbor or json)")
	slotCount := flag.Int("slots", savegame.DefaultSlotCount, "Number of slots scanned for the latest save")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetLevel(level)

	ctx := context.Background()

	var slotStore store.Store
	switch *storeKind {
	case "file":
		slotStore, err = store.NewFileStore(*savePath)
		if err != nil {
			panic(fmt.Sprintf("Failed to create file store: %v", err))
		}
	case "sqlite":
		dbPath := os.Getenv("SAVE_DATABASE_PATH")
		if dbPath == "" {
			dbPath = "saves.db"
		}
		slotStore, err = store.NewSQLiteStore(ctx, dbPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to create sqlite store: %v", err))
		}
	default:
		panic(fmt.Sprintf("Unknown store backend %q", *storeKind))
	}
	defer slotStore.Close(ctx)

	manager := savegame.NewManager(savegame.NewManagerOptions{
		Store:     slotStore,
		Codec:     codec.Select(*codecName),
		SlotCount: *slotCount,
	})

	server := api.NewServer(api.NewServerOptions{
		Port:    *port,
		Manager: manager,
	})

	log.Info("Starting save service")
	server.Start()
}
