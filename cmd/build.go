package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/file"
	"github.com/jsphweid/motif/midi"
	"github.com/jsphweid/motif/model"
	"github.com/jsphweid/motif/sequence"
	"github.com/jsphweid/motif/util"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build <dir> [max]",
	Short: "Compiles a directory of notation files",
	Long: `Compiles every .ly file under dir to MIDI in the output directory and
writes a catalog of the results. max limits how many files are compiled.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = n
		}
		_, err := Build(args[0], maxNum)
		return err
	},
}

// Build recreates the output directory from the sources under dir.
// Sources that fail to compile are skipped.
func Build(dir string, maxNum int) (model.Catalog, error) {
	catalog := model.Catalog{Built: time.Now().UTC()}
	if err := util.RecreateOutputDir(); err != nil {
		return catalog, err
	}
	paths, err := util.GatherSourcePaths(dir, maxNum)
	if err != nil {
		return catalog, err
	}
	fileNumMap := file.CreateFileNumMap(paths)

	keys := util.GetKeys(fileNumMap)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for i, num := range keys {
		fmt.Printf("Compiling %v of %v sources\n", i+1, len(keys))
		entry, err := buildOne(num, fileNumMap[num])
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", fileNumMap[num], err)
			continue
		}
		catalog.Entries = append(catalog.Entries, entry)
	}

	return catalog, util.CreateBinary(util.GetCatalogPath(), catalog)
}

func buildOne(num model.FileNum, path string) (model.CatalogEntry, error) {
	res, err := compileFile(path, 0)
	if err != nil {
		return model.CatalogEntry{}, err
	}
	name := fmt.Sprintf("%03d-%v", num, file.MidiName(path))
	song := midi.Song{
		Title:  filepath.Base(path),
		Tempo:  constants.DefaultTempo,
		Tracks: []*sequence.OSequence{res.Sequence},
	}
	if err := midi.WriteFile(filepath.Join(constants.GetOutDir(), name), song); err != nil {
		return model.CatalogEntry{}, err
	}
	return model.CatalogEntry{
		FileNum:    num,
		Source:     path,
		MidiFile:   name,
		Notes:      noteCount(res.Sequence),
		NextOffset: res.Sequence.NextOffset(),
		Warnings:   warningStrings(res.Warnings),
	}, nil
}
