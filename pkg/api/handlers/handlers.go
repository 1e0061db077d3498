package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cbodonnell/saveslot/pkg/log"
	"github.com/cbodonnell/saveslot/pkg/savegame"
)

// SaveRequest is the body accepted by HandleSaveSlot. State is the
// external state provider's mapping; the screenshot fields come from the
// snapshot producer.
type SaveRequest struct {
	State            map[string]any `json:"state"`
	Screenshot       string         `json:"screenshot"`
	ScreenshotWidth  int            `json:"screenshot_width"`
	ScreenshotHeight int            `json:"screenshot_height"`
}

func HandleLatestSlot(manager *savegame.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := manager.LatestSlot(r.Context())
		if !ok {
			http.Error(w, "No saves found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int{"slot": slot}); err != nil {
			log.Error("failed to encode latest slot: %v", err)
			http.Error(w, "Failed to encode latest slot", http.StatusInternalServerError)
			return
		}
	}
}

func HandleLoadSlot(manager *savegame.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotFromRequest(r)
		if !ok {
			http.Error(w, "Invalid slot", http.StatusBadRequest)
			return
		}
		rec := manager.Load(r.Context(), slot)
		if rec == nil {
			http.Error(w, "Slot is empty", http.StatusNotFound)
			return
		}
		// Corrupt slots still return a record; callers check its
		// "error" field.
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rec); err != nil {
			log.Error("failed to encode record: %v", err)
			http.Error(w, "Failed to encode record", http.StatusInternalServerError)
			return
		}
	}
}

func HandleSaveSlot(manager *savegame.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotFromRequest(r)
		if !ok {
			http.Error(w, "Invalid slot", http.StatusBadRequest)
			return
		}
		var req SaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		var snapshot *savegame.Snapshot
		if req.Screenshot != "" {
			snapshot = &savegame.Snapshot{
				Image:  req.Screenshot,
				Width:  req.ScreenshotWidth,
				Height: req.ScreenshotHeight,
			}
		}
		if err := manager.Save(r.Context(), slot, req.State, snapshot); err != nil {
			log.Error("failed to save slot %d: %v", slot, err)
			http.Error(w, "Failed to save", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func slotFromRequest(r *http.Request) (int, bool) {
	slot, err := strconv.Atoi(mux.Vars(r)["slot"])
	if err != nil || slot < 1 {
		return 0, false
	}
	return slot, true
}
