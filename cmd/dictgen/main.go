// Command dictgen compiles a lexicon plus a unilex transcription
// source into a hatchery JSON file (spec.md §6 "CLI (compiler
// shell)"). Grounded on local-utils/json_to_hatchery.py.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/crestwick/amphitheory/pkg/lexicon"
	"github.com/crestwick/amphitheory/pkg/match"
	"github.com/crestwick/amphitheory/pkg/sopheme"
	"github.com/crestwick/amphitheory/pkg/textenc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dictgen:", err)
		os.Exit(1)
	}
}

func run() error {
	var inJSONPath, inUnilexPath, outPath, unilexEncoding string
	flag.StringVar(&inJSONPath, "in-json", "", "path to the input JSON lexicon (outline -> translation)")
	flag.StringVar(&inJSONPath, "j", "", "shorthand for -in-json")
	flag.StringVar(&inUnilexPath, "in-unilex", "", "path to the input unilex transcription source")
	flag.StringVar(&inUnilexPath, "u", "", "shorthand for -in-unilex")
	flag.StringVar(&outPath, "out", "", "path to write the compiled hatchery dictionary")
	flag.StringVar(&outPath, "o", "", "shorthand for -out")
	flag.StringVar(&unilexEncoding, "unilex-encoding", "utf-8", "declared encoding of the unilex file")
	flag.Parse()

	if inJSONPath == "" || inUnilexPath == "" || outPath == "" {
		return fmt.Errorf("missing required flag: -in-json, -in-unilex and -out are all required")
	}

	entries, err := compile(inJSONPath, inUnilexPath, unilexEncoding)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := json.NewEncoder(out).Encode(entries); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

// compile implements json_to_hatchery._main: read the flat lexicon,
// reverse-index it by translation, then walk the unilex transcription
// source once, aligning every outline registered for a translation it
// defines.
func compile(inJSONPath, inUnilexPath, unilexEncoding string) ([][]sopheme.Dict, error) {
	jsonFile, err := os.Open(inJSONPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inJSONPath, err)
	}
	defer jsonFile.Close()

	flat, err := lexicon.LoadFlatJSON(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", inJSONPath, err)
	}
	reverse := lexicon.ReverseIndex(flat)

	encID, err := textenc.Parse(unilexEncoding)
	if err != nil {
		return nil, err
	}
	unilexFile, err := os.Open(inUnilexPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inUnilexPath, err)
	}
	defer unilexFile.Close()
	decoded, err := textenc.NewDecodingReader(unilexFile, encID)
	if err != nil {
		return nil, err
	}

	unilexEntries, err := lexicon.ReadUnilex(decoded)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", inUnilexPath, err)
	}

	var out [][]sopheme.Dict
	for _, entry := range unilexEntries {
		outlines, ok := reverse[entry.Translation]
		if !ok {
			continue
		}
		for _, outlineSteno := range outlines {
			sophemes, err := match.Sophemes(entry.Translation, entry.Transcription, outlineSteno)
			if err != nil {
				// Unbuildable alignment: skip this entry silently
				// (spec.md §7), matching build_trie's per-entry
				// recovery policy rather than aborting the batch.
				continue
			}
			dicts := make([]sopheme.Dict, len(sophemes))
			for i, s := range sophemes {
				dicts[i] = s.ToDict()
			}
			out = append(out, dicts)
		}
	}

	return out, nil
}
