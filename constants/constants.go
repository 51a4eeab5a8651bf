package constants

import (
	"os"
	"runtime"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetOutDir is where compiled MIDI files and the catalog are written.
func GetOutDir() string {
	return getenv("MOTIF_OUT_DIR", "./out")
}

// GetPlayer is the external program used to play a MIDI file. An empty
// result means there is no default for this platform.
func GetPlayer() string {
	if p := os.Getenv("MOTIF_PLAYER"); p != "" {
		return p
	}
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "linux":
		return "timidity"
	}
	return ""
}

// GetMidiPort selects a MIDI out port by name substring. Empty means use an
// external player instead.
func GetMidiPort() string {
	return os.Getenv("MOTIF_MIDI_PORT")
}

func GetAddr() string {
	return getenv("MOTIF_ADDR", ":8080")
}

// GetDynamoDBEndpoint returns "" when passage metadata is not stored.
func GetDynamoDBEndpoint() string {
	return os.Getenv("MOTIF_DYNAMODB_ENDPOINT")
}

func GetDynamoDBTable() string {
	return getenv("MOTIF_DYNAMODB_TABLE", "motif-passages")
}

func GetDynamoDBRegion() string {
	return getenv("MOTIF_DYNAMODB_REGION", "localhost")
}

const TicksPerQuarter = 16

const DefaultTempo = 120

const DefaultVelocity = 64

const CatalogFilename = "catalog.dat"

// PreviewNotes is how many notes an excerpt keeps.
const PreviewNotes = 10
