package model

import "time"

type FileNum = uint32

// CatalogEntry describes one compiled source file.
type CatalogEntry struct {
	FileNum    FileNum  `json:"file_num"`
	Source     string   `json:"source"`
	MidiFile   string   `json:"midi_file"`
	Notes      int      `json:"notes"`
	NextOffset int      `json:"next_offset"`
	Warnings   []string `json:"warnings,omitempty"`
}

type Catalog struct {
	Built   time.Time      `json:"built"`
	Entries []CatalogEntry `json:"entries"`
}

type FileNumToSourcePath = map[FileNum]string
