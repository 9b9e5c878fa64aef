// Package catalogfile loads a model catalog snapshot from a YAML or JSON
// file, for running against exported fixtures instead of a live host.
package catalogfile

import (
	"fmt"
	"os"

	"github.com/velikanov/segselect/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	errorReadCatalogFormat  = "read catalog file: %w"
	errorParseCatalogFormat = "parse catalog file: %w"
)

// fileCatalog is the wrapped document form with a top-level models key.
type fileCatalog struct {
	Models models.Collection `yaml:"models"`
}

// Load reads the catalog at path. The file may hold either a bare descriptor
// sequence or a mapping with a top-level "models" key; JSON parses as a YAML
// subset. Descriptor order is preserved exactly as written, so files must
// list newer versions first per base name, like the host registry does.
func Load(path string) (models.Collection, error) {
	fileContents, readError := os.ReadFile(path)
	if readError != nil {
		return nil, fmt.Errorf(errorReadCatalogFormat, readError)
	}

	var catalog models.Collection
	if unmarshalError := yaml.Unmarshal(fileContents, &catalog); unmarshalError == nil {
		return catalog, nil
	}

	var wrappedCatalog fileCatalog
	if unmarshalError := yaml.Unmarshal(fileContents, &wrappedCatalog); unmarshalError != nil {
		return nil, fmt.Errorf(errorParseCatalogFormat, unmarshalError)
	}
	return wrappedCatalog.Models, nil
}
