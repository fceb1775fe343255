package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Defaults applied when a scene file leaves a setting out
const (
	DefaultWidth  = 200
	DefaultHeight = 100
)

// SceneFile is the on-disk layout of a YAML scene description
type SceneFile struct {
	Name            string                 `yaml:"name"`
	Description     string                 `yaml:"description"`
	Width           int                    `yaml:"width"`
	Height          int                    `yaml:"height"`
	SamplesPerPixel int                    `yaml:"samples_per_pixel"`
	MaxDepth        int                    `yaml:"max_depth"`
	Camera          CameraDef              `yaml:"camera"`
	Background      *BackgroundDef         `yaml:"background"`
	Materials       map[string]MaterialDef `yaml:"materials"`
	Spheres         []SphereDef            `yaml:"spheres"`
}

// CameraDef mirrors renderer.CameraConfig; the aspect ratio comes from the image size
type CameraDef struct {
	LookFrom      []float64 `yaml:"look_from"`
	LookAt        []float64 `yaml:"look_at"`
	Up            []float64 `yaml:"up"`
	VFov          *float64  `yaml:"vfov"`
	Aperture      float64   `yaml:"aperture"`
	FocusDistance float64   `yaml:"focus_distance"`
}

// BackgroundDef holds the sky gradient colors
type BackgroundDef struct {
	Top    []float64 `yaml:"top"`
	Bottom []float64 `yaml:"bottom"`
}

// MaterialDef describes one named material
type MaterialDef struct {
	Type            string    `yaml:"type"` // lambertian, metal or dielectric
	Albedo          []float64 `yaml:"albedo"`
	Fuzz            float64   `yaml:"fuzz"`
	RefractiveIndex float64   `yaml:"refractive_index"`
}

// SphereDef places a sphere using a named material
type SphereDef struct {
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// LoadSceneFile reads and builds a scene from a YAML file
func LoadSceneFile(filename string) (*scene.Scene, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("while opening scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("while loading %s: %w", filename, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return s, nil
}

// ParseScene decodes a YAML scene description and builds the scene it describes
func ParseScene(reader io.Reader) (*scene.Scene, error) {
	var file SceneFile
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("while decoding scene: empty document")
		}
		return nil, fmt.Errorf("while decoding scene: %w", err)
	}
	return file.Build()
}

// Build converts the decoded description into a renderable scene
func (f *SceneFile) Build() (*scene.Scene, error) {
	cameraConfig, err := f.Camera.toConfig()
	if err != nil {
		return nil, fmt.Errorf("while reading camera: %w", err)
	}

	width, height := f.Width, f.Height
	if width == 0 && height == 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", renderer.ErrInvalidDimensions, width, height)
	}

	s := scene.New(f.Name, cameraConfig, width, height)
	s.Description = f.Description
	if f.SamplesPerPixel != 0 {
		s.SamplingConfig.SamplesPerPixel = f.SamplesPerPixel
	}
	if f.MaxDepth != 0 {
		s.SamplingConfig.MaxDepth = f.MaxDepth
	}

	if f.Background != nil {
		background, err := f.Background.toBackground()
		if err != nil {
			return nil, fmt.Errorf("while reading background: %w", err)
		}
		s.Background = background
	}

	materials := make(map[string]core.Material, len(f.Materials))
	for _, name := range sortedKeys(f.Materials) {
		mat, err := f.Materials[name].toMaterial()
		if err != nil {
			return nil, fmt.Errorf("while reading material %q: %w", name, err)
		}
		materials[name] = mat
	}

	for i, sphere := range f.Spheres {
		center, err := toVec3(sphere.Center)
		if err != nil {
			return nil, fmt.Errorf("while reading sphere %d center: %w", i, err)
		}
		if sphere.Radius == 0 {
			return nil, fmt.Errorf("while reading sphere %d: radius must be non-zero", i)
		}
		mat, ok := materials[sphere.Material]
		if !ok {
			return nil, fmt.Errorf("while reading sphere %d: unknown material %q", i, sphere.Material)
		}
		s.AddSphere(center, sphere.Radius, mat)
	}

	return s, nil
}

func (c CameraDef) toConfig() (renderer.CameraConfig, error) {
	var config renderer.CameraConfig

	if c.VFov == nil {
		return config, fmt.Errorf("vfov is required")
	}

	var err error
	if config.LookFrom, err = optionalVec3(c.LookFrom, core.NewVec3(0, 0, 0)); err != nil {
		return config, fmt.Errorf("look_from: %w", err)
	}
	if config.LookAt, err = optionalVec3(c.LookAt, core.NewVec3(0, 0, -1)); err != nil {
		return config, fmt.Errorf("look_at: %w", err)
	}
	if config.Up, err = optionalVec3(c.Up, core.NewVec3(0, 1, 0)); err != nil {
		return config, fmt.Errorf("up: %w", err)
	}

	config.VFov = *c.VFov
	config.Aperture = c.Aperture
	config.FocusDistance = c.FocusDistance
	return config, nil
}

func (b BackgroundDef) toBackground() (integrator.Background, error) {
	defaults := integrator.DefaultBackground()

	top, err := optionalVec3(b.Top, defaults.Top)
	if err != nil {
		return defaults, fmt.Errorf("top: %w", err)
	}
	bottom, err := optionalVec3(b.Bottom, defaults.Bottom)
	if err != nil {
		return defaults, fmt.Errorf("bottom: %w", err)
	}
	return integrator.Background{Top: top, Bottom: bottom}, nil
}

func (m MaterialDef) toMaterial() (core.Material, error) {
	switch strings.ToLower(m.Type) {
	case "lambertian":
		albedo, err := toVec3(m.Albedo)
		if err != nil {
			return nil, fmt.Errorf("albedo: %w", err)
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := toVec3(m.Albedo)
		if err != nil {
			return nil, fmt.Errorf("albedo: %w", err)
		}
		return material.NewMetal(albedo, m.Fuzz), nil
	case "dielectric":
		if m.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("refractive_index must be positive, got %g", m.RefractiveIndex)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func toVec3(values []float64) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

func optionalVec3(values []float64, fallback core.Vec3) (core.Vec3, error) {
	if values == nil {
		return fallback, nil
	}
	return toVec3(values)
}

func sortedKeys(m map[string]MaterialDef) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validateFilePath rejects paths that cannot name a scene file
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("invalid file type %q: only .yaml and .yml files are allowed", ext)
	}

	return nil
}
