package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	XDGName = "postbox"
)

var (
	// Default is the default configuration that is used, along with ~/.postbox.yaml
	Default = Config{
		SeedPosts:    30,
		ArchivePosts: 10000,
		DarkMode:     true,
	}
)

type Config struct {
	// SeedPosts is how many generated posts the board starts with.
	SeedPosts int `yaml:"seedPosts" validate:"min=0"`
	// ArchivePosts is the size of the one-shot generated archive.
	ArchivePosts int `yaml:"archivePosts" validate:"required,min=1"`
	// DarkMode toggles the root presentation marker.
	DarkMode bool `yaml:"darkMode"`
	// RandomSeed makes post generation deterministic when nonzero.
	RandomSeed int64 `yaml:"randomSeed" validate:"min=0"`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	validate := validator.New()
	err = validate.Struct(c)
	if err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &c, nil
}

// NewFromFile loads the config at path, falling back to Default when the
// file is absent.
func NewFromFile(path string) (*Config, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expandedPath)
	if err != nil {
		c := Default
		return &c, nil
	}
	defer f.Close()

	return NewFromReader(f)
}

func RuntimeFile(filename string) (string, error) {
	return xdg.RuntimeFile(fmt.Sprintf("%s/%s", XDGName, filename))
}
