package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame   int    `json:"frame"`
	Image   string `json:"image"`
	Drawn   int    `json:"drawn"`
	Skipped int    `json:"skipped"`
}

// WriteManifest writes manifest.json listing every frame that was saved.
// Image paths are relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success || r.Path == "" {
			continue
		}
		img, err := filepath.Rel(dir, r.Path)
		if err != nil {
			img = r.Path
		}
		entries = append(entries, ManifestEntry{
			Frame:   r.Frame,
			Image:   filepath.ToSlash(img),
			Drawn:   r.Drawn,
			Skipped: r.Skipped,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
