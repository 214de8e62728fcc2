package testutil

import (
	"embed"
	"encoding/json"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"

	"ppmdesk.io/ppmdesk/internal/provider"
)

//go:embed fixtures/*.yaml
var fixturesFS embed.FS

// EstateFixture is the default fixture file.
const EstateFixture = "estate.yaml"

// LoadDataset decodes an embedded fixture. Fixture keys are column names,
// so the YAML is bridged through JSON onto the domain tags.
func LoadDataset(t testing.TB, name string) provider.Dataset {
	t.Helper()
	raw, err := fixturesFS.ReadFile("fixtures/" + name)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	var ds provider.Dataset
	if err := DecodeYAML(raw, &ds); err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
	return ds
}

// DecodeYAML decodes raw YAML into out using out's json tags.
func DecodeYAML(raw []byte, out any) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	bridged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("yaml to json: %w", err)
	}
	return json.Unmarshal(bridged, out)
}

// SeededProvider returns a MockProvider loaded with the estate fixture.
func SeededProvider(t testing.TB) *provider.MockProvider {
	t.Helper()
	p := provider.NewMockProvider()
	p.Seed(LoadDataset(t, EstateFixture))
	return p
}
