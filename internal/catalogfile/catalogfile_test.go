package catalogfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/velikanov/segselect/internal/catalogfile"
)

const (
	catalogFileName = "models.yaml"

	bareSequenceCatalog = `
- id: prostate-v1.0.1
  title: Prostate Segmentation
  version: 1.0.1
- id: prostate-v1.0.0
  title: Prostate Segmentation
  version: 1.0.0
  deprecated: true
`

	wrappedCatalog = `
models:
  - id: lung-v1.0.0
    title: Lung
    version: 1.0.0
`

	jsonCatalog = `[{"id":"heart-v2.1.0","title":"Heart","version":"2.1.0"}]`

	malformedCatalog = `{not yaml: [`
)

// writeCatalogFile stores contents in a temporary catalog file and returns its path.
func writeCatalogFile(testingInstance *testing.T, contents string) string {
	testingInstance.Helper()
	catalogPath := filepath.Join(testingInstance.TempDir(), catalogFileName)
	if writeError := os.WriteFile(catalogPath, []byte(contents), 0o600); writeError != nil {
		testingInstance.Fatalf("write catalog file: %v", writeError)
	}
	return catalogPath
}

type loadTestDefinition struct {
	testName        string
	fileContents    string
	expectedIDs     []string
	expectLoadError bool
}

// TestLoad_ParsesSupportedCatalogForms verifies bare-sequence, wrapped, and JSON catalog files.
func TestLoad_ParsesSupportedCatalogForms(testingInstance *testing.T) {
	testCases := []loadTestDefinition{
		{
			testName:     "bare descriptor sequence",
			fileContents: bareSequenceCatalog,
			expectedIDs:  []string{"prostate-v1.0.1", "prostate-v1.0.0"},
		},
		{
			testName:     "wrapped models mapping",
			fileContents: wrappedCatalog,
			expectedIDs:  []string{"lung-v1.0.0"},
		},
		{
			testName:     "json catalog",
			fileContents: jsonCatalog,
			expectedIDs:  []string{"heart-v2.1.0"},
		},
		{
			testName:        "malformed catalog",
			fileContents:    malformedCatalog,
			expectLoadError: true,
		},
	}
	for _, currentTestCase := range testCases {
		testingInstance.Run(currentTestCase.testName, func(nestedTestingInstance *testing.T) {
			catalogPath := writeCatalogFile(nestedTestingInstance, currentTestCase.fileContents)
			loadedCatalog, loadError := catalogfile.Load(catalogPath)
			if currentTestCase.expectLoadError {
				if loadError == nil {
					nestedTestingInstance.Fatal("expected load error")
				}
				return
			}
			if loadError != nil {
				nestedTestingInstance.Fatalf("unexpected error: %v", loadError)
			}
			if len(loadedCatalog) != len(currentTestCase.expectedIDs) {
				nestedTestingInstance.Fatalf("catalog size=%d expected=%d", len(loadedCatalog), len(currentTestCase.expectedIDs))
			}
			for descriptorIndex, descriptor := range loadedCatalog {
				if descriptor.ID != currentTestCase.expectedIDs[descriptorIndex] {
					nestedTestingInstance.Fatalf("id[%d]=%q expected=%q", descriptorIndex, descriptor.ID, currentTestCase.expectedIDs[descriptorIndex])
				}
			}
		})
	}
}

// TestLoad_PreservesDeprecationFlag verifies that deprecation metadata survives loading.
func TestLoad_PreservesDeprecationFlag(testingInstance *testing.T) {
	catalogPath := writeCatalogFile(testingInstance, bareSequenceCatalog)
	loadedCatalog, loadError := catalogfile.Load(catalogPath)
	if loadError != nil {
		testingInstance.Fatalf("unexpected error: %v", loadError)
	}
	if loadedCatalog[0].Deprecated {
		testingInstance.Fatalf("descriptor %q unexpectedly deprecated", loadedCatalog[0].ID)
	}
	if !loadedCatalog[1].Deprecated {
		testingInstance.Fatalf("descriptor %q expected deprecated", loadedCatalog[1].ID)
	}
}

// TestLoad_MissingFileFails verifies the error path for an absent catalog file.
func TestLoad_MissingFileFails(testingInstance *testing.T) {
	missingPath := filepath.Join(testingInstance.TempDir(), "absent.yaml")
	if _, loadError := catalogfile.Load(missingPath); loadError == nil {
		testingInstance.Fatal("expected load error for missing file")
	}
}
