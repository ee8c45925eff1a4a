package cmd

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chordwire/chordwire/constants"
	"github.com/chordwire/chordwire/model"
	"github.com/chordwire/chordwire/store"
	"github.com/chordwire/chordwire/util"
	"github.com/chordwire/chordwire/wire"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Serve()
	},
}

var logger = zap.NewNop()

// library is the in-memory playlist collection served under /library.
var (
	libraryMu sync.RWMutex
	library   = map[string]model.Playlist{}
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// HandleParse decodes a wire string into a structured playlist.
func HandleParse(w http.ResponseWriter, r *http.Request) {
	var req model.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pl, err := wire.DecodePlaylist(req.Name, strings.TrimSpace(req.Wire), wire.Identity{})
	if err != nil {
		logger.Info("parse rejected", zap.String("name", req.Name), zap.Error(err))
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

// HandleRender encodes a structured playlist back to its wire string.
func HandleRender(w http.ResponseWriter, r *http.Request) {
	var req model.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	encoded, err := wire.EncodePlaylist(req.Playlist, wire.Identity{})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.RenderResponse{Wire: encoded})
}

// HandleLibraryAdd parses and stores a playlist in the in-memory library,
// returning its generated id.
func HandleLibraryAdd(w http.ResponseWriter, r *http.Request) {
	var req model.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pl, err := wire.DecodePlaylist(req.Name, strings.TrimSpace(req.Wire), wire.Identity{})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := uuid.NewString()
	libraryMu.Lock()
	library[id] = pl
	libraryMu.Unlock()
	logger.Info("playlist added", zap.String("id", id), zap.String("name", pl.Name))
	writeJSON(w, http.StatusCreated, model.LibraryEntry{ID: id, Name: pl.Name})
}

// HandleLibraryList lists the stored playlists in id order.
func HandleLibraryList(w http.ResponseWriter, r *http.Request) {
	libraryMu.RLock()
	entries := make([]model.LibraryEntry, 0, len(library))
	for _, id := range util.SortedKeys(library) {
		entries = append(entries, model.LibraryEntry{ID: id, Name: library[id].Name})
	}
	libraryMu.RUnlock()
	writeJSON(w, http.StatusOK, entries)
}

// HandleLibraryGet returns one stored playlist by id.
func HandleLibraryGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	libraryMu.RLock()
	pl, ok := library[id]
	libraryMu.RUnlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "no playlist with id " + id})
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

// HandlePlaylistPut validates a raw wire string and persists it under its
// name in the durable store.
func HandlePlaylistPut(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var req model.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	raw := strings.TrimSpace(req.Wire)
	if _, err := wire.DecodePlaylist(name, raw, wire.Identity{}); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	st, err := store.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := st.PutPlaylist(name, raw); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, model.LibraryEntry{ID: name, Name: name})
}

// HandlePlaylistGet fetches a stored wire string by name.
func HandlePlaylistGet(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	st, err := store.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	raw, ok, err := st.GetPlaylist(name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "no playlist named " + name})
		return
	}
	writeJSON(w, http.StatusOK, model.RenderResponse{Wire: raw})
}

// NewRouter builds the API router with CORS applied.
func NewRouter() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/parse", HandleParse).Methods("POST")
	r.HandleFunc("/render", HandleRender).Methods("POST")
	r.HandleFunc("/library", HandleLibraryAdd).Methods("POST")
	r.HandleFunc("/library", HandleLibraryList).Methods("GET")
	r.HandleFunc("/library/{id}", HandleLibraryGet).Methods("GET")
	r.HandleFunc("/playlists/{name}", HandlePlaylistPut).Methods("PUT")
	r.HandleFunc("/playlists/{name}", HandlePlaylistGet).Methods("GET")
	return cors.Default().Handler(r)
}

// Serve runs the API until the process is killed.
func Serve() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer l.Sync()
	logger = l

	addr := constants.GetServeAddr()
	logger.Info("serving", zap.String("addr", addr))
	return http.ListenAndServe(addr, NewRouter())
}
