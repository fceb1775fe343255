package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-pathtracer/pkg/logging"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var logger = logging.New("loaders")

// sceneHeader holds the fields read when listing scene files
type sceneHeader struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ListSceneFiles scans dir for YAML scene files. A missing directory yields an empty list.
// Files whose metadata cannot be read are skipped with a warning.
func ListSceneFiles(dir string) ([]scene.SceneInfo, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []scene.SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("while scanning scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := make([]scene.SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			logger.Warningf("skipping scene file: %v", err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a scene file.
// The file name is used when the document does not set a name.
func ParseSceneMetadata(filePath string) (scene.SceneInfo, error) {
	filename := filepath.Base(filePath)
	id := filename[:len(filename)-len(filepath.Ext(filename))]

	info := scene.SceneInfo{
		ID:          "file:" + id,
		DisplayName: scene.TitleCase(id),
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, fmt.Errorf("while reading %s: %w", filePath, err)
	}

	var header sceneHeader
	if err := yaml.Unmarshal(data, &header); err != nil {
		return info, fmt.Errorf("while reading metadata from %s: %w", filePath, err)
	}

	if header.Name != "" {
		info.DisplayName = header.Name
	}
	info.Description = header.Description

	return info, nil
}
