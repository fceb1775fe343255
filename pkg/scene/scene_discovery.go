package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a scene that can be rendered by name
type SceneInfo struct {
	ID          string // Unique identifier
	DisplayName string // Human readable name
	Description string // Optional description
	Type        string // "builtin" or "file"
	FilePath    string // Path to the scene file (file type only)
}

var builtinScenes = map[string]func() *Scene{
	"default":   NewDefaultScene,
	"materials": NewMaterialsScene,
	"random":    func() *Scene { return NewRandomScene(RandomSceneSeed) },
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds a fresh copy of the named built-in scene
func Lookup(name string) (*Scene, error) {
	create, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return create(), nil
}

// ListBuiltinScenes returns metadata for every built-in scene, sorted by ID
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: TitleCase(name),
			Description: builtinScenes[name]().Description,
			Type:        "builtin",
		})
	}
	return scenes
}

// TitleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func TitleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
