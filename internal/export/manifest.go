package export

import (
	"encoding/json"
	"os"

	"spritesplit/internal/sprite"
)

// Manifest describes one split sheet.
type Manifest struct {
	Source  string          `json:"source"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Layout  string          `json:"layout"`
	Padding sprite.Padding  `json:"padding"`
	Sprites []ManifestEntry `json:"sprites"`
}

// ManifestEntry represents one sprite in the output manifest.
type ManifestEntry struct {
	Index  int        `json:"index"`
	File   string     `json:"file"`
	Crop   sprite.Box `json:"crop"`
	Box    sprite.Box `json:"box"`
	Pixels int        `json:"pixels"`
}

// NewManifest builds the manifest for an extraction result.
func NewManifest(source string, res sprite.Result, pad sprite.Padding, cfg Config) Manifest {
	m := Manifest{
		Source:  source,
		Width:   res.Width,
		Height:  res.Height,
		Layout:  res.Layout.String(),
		Padding: pad,
		Sprites: make([]ManifestEntry, len(res.Sprites)),
	}
	for i, s := range res.Sprites {
		m.Sprites[i] = ManifestEntry{
			Index:  s.Index,
			File:   FileName(s.Index, cfg.NameWidth, cfg.Format),
			Crop:   s.Crop,
			Box:    s.Box,
			Pixels: s.Pixels,
		}
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
