package hatchery

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/crestwick/amphitheory/pkg/sopheme"
)

// SaveGobCache writes entries' gob encoding to path, a fast-path
// binary cache of a compiled lexicon that skips re-parsing JSON and
// re-running alignment on the next load. Adapted from
// pkg/phono/gob_loader.go's GobLoader, repurposed from a phonetic
// dictionary cache to a hatchery entry-list cache.
func SaveGobCache(path string, entries [][]sopheme.Dict) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(entries)
}

// LoadGobCache reads a gob cache written by SaveGobCache.
func LoadGobCache(r io.Reader) ([][]sopheme.Dict, error) {
	var entries [][]sopheme.Dict
	if err := gob.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadGobReader rebuilds the NFA from a gob cache instead of the JSON
// hatchery format, otherwise identical to LoadReader.
func (d *Dictionary) LoadGobReader(r io.Reader) error {
	entries, err := LoadGobCache(r)
	if err != nil {
		return err
	}
	return d.loadEntries(entries)
}
