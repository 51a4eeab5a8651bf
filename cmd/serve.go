package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/db"
	"github.com/jsphweid/motif/midi"
	"github.com/jsphweid/motif/model"
	"github.com/jsphweid/motif/sample"
	"github.com/jsphweid/motif/store"
	"github.com/jsphweid/motif/util"
)

var (
	catalog  model.Catalog
	passages *db.DB
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the HTTP API",
	Long:  `Serves parsing and MIDI compilation over HTTP on MOTIF_ADDR.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadServeFiles(); err != nil {
			return err
		}
		addr := constants.GetAddr()
		log.Printf("listening on %v", addr)
		log.Fatal(http.ListenAndServe(addr, NewRouter()))
		return nil
	},
}

// LoadServeFiles loads the catalog of the last build, if any, and connects
// to the passage table when one is configured.
func LoadServeFiles() error {
	c, err := util.ReadBinary[model.Catalog](util.GetCatalogPath())
	switch {
	case err == nil:
		catalog = c
	case errors.Is(err, os.ErrNotExist):
		catalog = model.Catalog{}
	default:
		return err
	}

	passages, err = db.New()
	return err
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/midi", HandleMidi).Methods("POST")
	router.HandleFunc("/midi/{id}", HandleGetMidi).Methods("GET")
	router.HandleFunc("/catalog", HandleCatalog).Methods("GET")
	router.HandleFunc("/passages/{id}", HandlePassage).Methods("GET")

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	var input model.ParseRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not decode request body"))
		return
	}

	res, err := compileSource(input.Source, input.Offset)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ParseResponse{
		Points:     toModelPoints(res.Sequence),
		NextOffset: res.Sequence.NextOffset(),
		Warnings:   warningStrings(res.Warnings),
	})
}

func HandleMidi(w http.ResponseWriter, r *http.Request) {
	var input model.MidiRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not decode request body"))
		return
	}
	if len(input.Tracks) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("at least one track is required"))
		return
	}
	if input.Tempo == 0 {
		input.Tempo = constants.DefaultTempo
	}

	song, _, err := compileSong(input.Tracks, input.Title, input.Tempo)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	id, err := store.Save(song)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if passages != nil {
		p := model.Passage{
			Id:        id,
			Title:     input.Title,
			Tempo:     input.Tempo,
			Tracks:    input.Tracks,
			CreatedAt: time.Now().Unix(),
		}
		for _, tr := range song.Tracks {
			p.Notes += noteCount(tr)
			p.NextOffset = util.Max(p.NextOffset, tr.NextOffset())
		}
		if err := passages.PutPassage(r.Context(), p); err != nil {
			log.Printf("could not store passage %v: %v", id, err)
		}
	}
	writeJSON(w, http.StatusCreated, model.MidiResponse{Id: id})
}

// HandleGetMidi returns a stored file. With ?preview=1 only the first few
// notes are sent.
func HandleGetMidi(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	path, err := store.Path(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Cause(err) == store.ErrNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	preview, _ := strconv.ParseBool(r.URL.Query().Get("preview"))
	if !preview {
		http.ServeFile(w, r, path)
		return
	}

	song, err := midi.ReadFile(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	excerpt := sample.Song(*song, 0, constants.PreviewNotes)
	if err := midi.Write(w, excerpt); err != nil {
		log.Printf("could not write preview of %v: %v", id, err)
	}
}

func HandleCatalog(w http.ResponseWriter, r *http.Request) {
	entries := catalog.Entries
	if entries == nil {
		entries = []model.CatalogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func HandlePassage(w http.ResponseWriter, r *http.Request) {
	if passages == nil {
		writeError(w, http.StatusNotFound, errors.New("passage metadata is not configured"))
		return
	}
	id := mux.Vars(r)["id"]
	p, err := passages.GetPassage(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, errors.Errorf("no passage %v", id))
		return
	}
	writeJSON(w, http.StatusOK, p)
}
