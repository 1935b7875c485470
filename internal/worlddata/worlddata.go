// Package worlddata loads a world.State's starting Rooms/Objects from TOML
// resource files, generalizing the teacher's TQW resource-bundle loader
// (internal/tqw/tqw.go) from its fixed Room/NPC/Item trio to this repo's
// single polymorphic world.Object model.
package worlddata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"greatunderground/internal/world"
)

// MaxManifestRecursionDepth bounds manifest-of-manifests nesting, mirroring
// the teacher's same-named constant (internal/tqw/tqw.go).
const MaxManifestRecursionDepth = 32

// FileInfo is the common header every resource file carries, read ahead of
// the rest of the file so the loader knows whether to parse it as a
// manifest or as data, per the teacher's FileInfo/ScanFileInfo pattern.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// Manifest lists the relative paths of data files to merge into one
// WorldData, mirroring the teacher's Manifest (internal/tqw/tqw.go).
type Manifest struct {
	Files []string `toml:"files"`
}

// WorldData is the fully parsed, validated result of loading one or more
// resource files: enough to build a world.State from.
type WorldData struct {
	Rooms   map[string]*world.Room
	Objects map[string]*world.Object
	Start   string
}

// BuildState constructs a fresh world.State from wd, seeded with seed. The
// returned state's Globals start empty; callers are expected to seed any
// starting global values (LAMP_FUEL, etc.) themselves, since those are
// world-specific tuning rather than part of the room/object graph.
func (wd WorldData) BuildState(seed int64) (*world.State, error) {
	st, err := world.New(wd.Rooms, wd.Objects, wd.Start, seed)
	if err != nil {
		return nil, err
	}
	st.Globals = world.NewGlobals()
	return st, nil
}

// LoadResourceBundle reads path, which may be either a manifest file or a
// data file, and returns the merged WorldData, following manifest
// references recursively up to MaxManifestRecursionDepth.
func LoadResourceBundle(path string) (WorldData, error) {
	tqw, err := recursiveUnmarshal(path, nil)
	if err != nil {
		return WorldData{}, err
	}
	return parseWorldData(tqw)
}

// ScanFileInfo reads the format/type header out of data without attempting
// to parse the rest of the file, so the loader can tell a manifest from a
// data file before committing to either schema. Grounded on the teacher's
// ScanFileInfo (internal/tqw/tqw.go), which only runs the TOML parser over
// the bytes preceding the first table header.
func ScanFileInfo(data []byte) (FileInfo, error) {
	var topLevelEnd = -1
	var onNewLine bool
	for i, b := range data {
		if onNewLine && b == '[' {
			topLevelEnd = i
			break
		}
		if b == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(b)) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	err := toml.Unmarshal(scanData, &info)
	return info, err
}

func recursiveUnmarshal(path string, manifStack []string) (topLevelWorldData, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: reading from disk: %w", path, err)
	}

	info, err := ScanFileInfo(data)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: detecting file type: %w", path, err)
	}
	if strings.ToUpper(info.Format) != "ADVI" {
		return topLevelWorldData{}, fmt.Errorf("%q: missing format = \"ADVI\" header", path)
	}

	switch strings.ToUpper(info.Type) {
	case "DATA":
		var d topLevelWorldData
		if err := toml.Unmarshal(data, &d); err != nil {
			return d, fmt.Errorf("%q: %w", path, err)
		}
		return d, nil

	case "MANIFEST":
		if len(manifStack) >= MaxManifestRecursionDepth {
			return topLevelWorldData{}, fmt.Errorf("manifest %q: recursion too deep", path)
		}
		for _, seen := range manifStack {
			if seen == path {
				return topLevelWorldData{}, nil // circular ref, silently skip like the teacher does
			}
		}

		var manif Manifest
		if err := toml.Unmarshal(data, &manif); err != nil {
			return topLevelWorldData{}, fmt.Errorf("manifest %q: %w", path, err)
		}

		merged := topLevelWorldData{}
		dir := filepath.Dir(path)
		subStack := append(append([]string{}, manifStack...), path)

		for _, rel := range manif.Files {
			sub, err := recursiveUnmarshal(filepath.Join(dir, rel), subStack)
			if err != nil {
				return topLevelWorldData{}, fmt.Errorf("in file referred to by manifest %q: %w", path, err)
			}
			if sub.World.Start != "" {
				merged.World.Start = sub.World.Start
			}
			merged.Rooms = append(merged.Rooms, sub.Rooms...)
			merged.Objects = append(merged.Objects, sub.Objects...)
		}
		return merged, nil

	default:
		return topLevelWorldData{}, fmt.Errorf("%q: type must be \"DATA\" or \"MANIFEST\"", path)
	}
}
