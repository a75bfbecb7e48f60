// Package staticdata is the fallback content source: three JSON fixture
// files plus procedural synthesis of every content kind the fixtures lack.
package staticdata

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

type Photo struct {
	Path    string `json:"path"`
	Caption string `json:"caption,omitempty"`
}

// Bundle is the raw fixture data. Content and Hotel stay untyped; their
// shapes are whatever the fixture author produced and the synthesizer reads
// them defensively.
type Bundle struct {
	Content map[string]any
	Hotel   map[string]any
	Photos  []Photo
}

// Load reads content.json, hotel.json and photos.json from dir. A missing
// file yields an empty default; an unparsable file is logged and also yields
// the empty default, so fallback mode can never fail to produce a bundle.
func Load(dir string) Bundle {
	b := Bundle{
		Content: readObject(filepath.Join(dir, "content.json")),
		Hotel:   readObject(filepath.Join(dir, "hotel.json")),
	}

	var manifest struct {
		Photos []Photo `json:"photos"`
	}
	readInto(filepath.Join(dir, "photos.json"), &manifest)
	b.Photos = manifest.Photos
	return b
}

func readObject(path string) map[string]any {
	out := map[string]any{}
	readInto(path, &out)
	return out
}

func readInto(path string, out any) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("path", path).Msg("read fixture failed")
		}
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("malformed fixture, using empty default")
	}
}

// photoURL returns the path of photo i, or the empty string past the end.
func (b Bundle) photoURL(i int) string {
	if i < 0 || i >= len(b.Photos) {
		return ""
	}
	return b.Photos[i].Path
}

// photoSlice returns the paths of photos [from, to), clamped to the list.
func (b Bundle) photoSlice(from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(b.Photos) {
		to = len(b.Photos)
	}
	if from >= to {
		return nil
	}
	out := make([]string, 0, to-from)
	for _, p := range b.Photos[from:to] {
		out = append(out, p.Path)
	}
	return out
}
