package util

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/jsphweid/motif/constants"
)

func RecreateOutputDir() error {
	dir := constants.GetOutDir()
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrap(err, "could not clear output dir")
	}
	return errors.Wrap(os.MkdirAll(dir, 0777), "could not create output dir")
}

func EnsureOutputDir() error {
	return errors.Wrap(os.MkdirAll(constants.GetOutDir(), 0777), "could not create output dir")
}

func GetCatalogPath() string {
	return filepath.Join(constants.GetOutDir(), constants.CatalogFilename)
}

// GatherSourcePaths walks path for .ly files. maxNum 0 means no limit.
func GatherSourcePaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(s, ".ly") {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, errors.Wrapf(err, "error walking %v", path)
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func CreateBinary(filename string, data any) error {
	fmt.Printf("Creating binary for filename: %v\n", filename)
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	if err := encoder.Encode(data); err != nil {
		return errors.Wrap(err, "could not encode binary")
	}
	return errors.Wrapf(os.WriteFile(filename, buf.Bytes(), 0666), "write failed for file: %v", filename)
}

func ReadBinary[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, errors.Wrap(err, "could not load binary file")
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&data); err != nil {
		return data, errors.Wrap(err, "could not decode binary file")
	}
	return data, nil
}

func Min[A constraints.Ordered](a A, b A) A {
	if a > b {
		return b
	}
	return a
}

func Max[A constraints.Ordered](a A, b A) A {
	if a < b {
		return b
	}
	return a
}
