package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cbodonnell/saveslot/pkg/api/handlers"
	"github.com/cbodonnell/saveslot/pkg/log"
	"github.com/cbodonnell/saveslot/pkg/savegame"
)

// Server exposes save, load, and latest-slot operations over HTTP.
type Server struct {
	server *http.Server
}

type NewServerOptions struct {
	Port    int
	Manager *savegame.Manager
}

// NewServer creates a new http.Server for handling save API requests
func NewServer(opts NewServerOptions) *Server {
	router := NewRouter(opts.Manager)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: router,
	}
	return &Server{
		server: server,
	}
}

// NewRouter builds the route table for the save API.
func NewRouter(manager *savegame.Manager) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/saves/latest", handlers.HandleLatestSlot(manager)).Methods(http.MethodGet)
	router.HandleFunc("/saves/{slot}", handlers.HandleLoadSlot(manager)).Methods(http.MethodGet)
	router.HandleFunc("/saves/{slot}", handlers.HandleSaveSlot(manager)).Methods(http.MethodPost)
	return router
}

// Start starts the Server
func (s *Server) Start() {
	log.Info("save API listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("save API closed")
			return
		}
		log.Error("save API error: %v", err)
	}
}

// Stop stops the Server
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
