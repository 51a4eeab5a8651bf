package file

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/jsphweid/motif/model"
)

func CreateFileNumMap(paths []string) model.FileNumToSourcePath {
	res := make(model.FileNumToSourcePath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// ReadSource reads a notation file, or standard input when path is "-".
func ReadSource(path string) (string, error) {
	var dat []byte
	var err error
	if path == "-" {
		dat, err = io.ReadAll(os.Stdin)
	} else {
		dat, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "could not read source %v", path)
	}
	return string(dat), nil
}

// MidiName swaps a source file's extension for .mid.
func MidiName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".mid"
}
