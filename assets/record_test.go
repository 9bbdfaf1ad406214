package assets

import (
	"encoding/json"
	"testing"
)

func TestParseMaterialRecord(t *testing.T) {

	record := &MaterialRecord{
		Name:      "/global/rock/01",
		Directory: "/assets/textures/rock/01",
		Parent:    "/base/normalmap/nonculled/alpharejected",
		Script:    "/assets/textures/rock/01/ogre.material",
		Textures:  TexturePresence{Normal: true, AlphaDiffuse: true},
	}

	doc, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal record: %s", err.Error())
	}

	parsed := ParseMaterialRecord(string(doc))
	if *parsed != *record {
		t.Errorf("Parsed record does not match stored record: %+v != %+v", parsed, record)
	}
}

func TestParseMaterialRecordMissingFields(t *testing.T) {

	parsed := ParseMaterialRecord(`{"name": "/global/bare"}`)
	if parsed.Name != "/global/bare" {
		t.Errorf("Expected name /global/bare, got %s", parsed.Name)
	}
	if parsed.Parent != "" || parsed.Textures.Normal {
		t.Errorf("Expected zero values for absent fields, got %+v", parsed)
	}
}
