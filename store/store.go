// Package store keeps compiled MIDI files in the output directory under
// random ids.
package store

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/midi"
	"github.com/jsphweid/motif/util"
)

var ErrNotFound = errors.New("midi file not found")

// Save writes song to <out>/<id>.mid and returns the id.
func Save(song midi.Song) (string, error) {
	if err := util.EnsureOutputDir(); err != nil {
		return "", err
	}
	id := uuid.New().String()
	if err := midi.WriteFile(filepath.Join(constants.GetOutDir(), id+".mid"), song); err != nil {
		return "", err
	}
	return id, nil
}

// Path resolves an id returned by Save. Ids that are not uuids are
// rejected so they cannot name files outside the output directory.
func Path(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", errors.Wrapf(ErrNotFound, "bad id %q", id)
	}
	path := filepath.Join(constants.GetOutDir(), parsed.String()+".mid")
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrapf(ErrNotFound, "id %v", id)
	}
	return path, nil
}

func Load(id string) (*midi.Song, error) {
	path, err := Path(id)
	if err != nil {
		return nil, err
	}
	return midi.ReadFile(path)
}
