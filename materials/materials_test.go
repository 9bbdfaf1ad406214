package materials

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/rking788/ogre-material-manager/assets"
)

// makeAssetDir creates root-relative relDir and fills it with the requested
// texture files. The diffuse header carries IHDR color type 6 when alpha is
// requested, 2 otherwise.
func makeAssetDir(t *testing.T, root, relDir string, normal, specular, alpha bool) *assets.Directory {
	t.Helper()

	dir := filepath.Join(root, filepath.FromSlash(relDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create asset directory: %s", err.Error())
	}

	header := make([]byte, 26)
	copy(header, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	header[25] = 2
	if alpha {
		header[25] = 6
	}
	writeTestFile(t, filepath.Join(dir, assets.DiffuseTextureName), header)

	if normal {
		writeTestFile(t, filepath.Join(dir, assets.NormalTextureName), []byte("n"))
	}
	if specular {
		writeTestFile(t, filepath.Join(dir, assets.SpecularTextureName), []byte("s"))
	}

	return &assets.Directory{Path: dir, Root: root}
}

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %s", path, err.Error())
	}
}

func TestName(t *testing.T) {

	cases := []struct {
		relDir   string
		expected string
	}{
		{"textures/rock/01", "/global/rock/01"},
		{"3d_objects/barrel", "/global/barrel"},
		{"3d_skeletons/goblin", "/global/goblin"},
		{"props/crate", "/global/props/crate"},
		// Stripping is unanchored, so mid-segment occurrences go too.
		{"textures/old_textures/rock", "/global/old_rock"},
	}

	for _, c := range cases {
		name := Name(c.relDir)
		if name != c.expected {
			t.Errorf("Name(%s): expected %s, got %s", c.relDir, c.expected, name)
		}

		// Same input always derives the same name
		if again := Name(c.relDir); again != name {
			t.Errorf("Name(%s) is not deterministic: %s != %s", c.relDir, again, name)
		}
	}
}

func TestParentMaterial(t *testing.T) {

	cases := []struct {
		presence assets.TexturePresence
		expected string
	}{
		{assets.TexturePresence{}, "/base/simple"},
		{assets.TexturePresence{Normal: true}, "/base/normalmap"},
		{assets.TexturePresence{Normal: true, Specular: true}, "/base/normalmap/specular"},
		// A specular map without a normal map does not change the parent
		{assets.TexturePresence{Specular: true}, "/base/simple"},
		{assets.TexturePresence{AlphaDiffuse: true}, "/base/simple/nonculled/alpharejected"},
		{assets.TexturePresence{Normal: true, AlphaDiffuse: true}, "/base/normalmap/nonculled/alpharejected"},
		{assets.TexturePresence{Normal: true, Specular: true, AlphaDiffuse: true}, "/base/normalmap/specular/nonculled/alpharejected"},
	}

	for _, c := range cases {
		parent := ParentMaterial(c.presence)
		if parent != c.expected {
			t.Errorf("ParentMaterial(%s): expected %s, got %s", c.presence, c.expected, parent)
		}
	}
}

func TestNew(t *testing.T) {

	root := t.TempDir()
	dir := makeAssetDir(t, root, "textures/rock/01", true, false, true)

	m, err := New(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	if m.Name != "/global/rock/01" {
		t.Errorf("Expected name /global/rock/01, got %s", m.Name)
	}
	if m.Parent != "/base/normalmap/nonculled/alpharejected" {
		t.Errorf("Expected parent /base/normalmap/nonculled/alpharejected, got %s", m.Parent)
	}
	if m.RelDir != "textures/rock/01" {
		t.Errorf("Expected relative dir textures/rock/01, got %s", m.RelDir)
	}
	if !m.Textures.Normal || m.Textures.Specular || !m.Textures.AlphaDiffuse {
		t.Errorf("Unexpected texture presence: %s", m.Textures)
	}
}
