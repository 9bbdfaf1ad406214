// Package materials implements the material definition pipeline: deriving a
// material name from an asset directory, classifying which parent material
// applies based on the textures present, and generating or validating the
// ogre.material script for the directory.
package materials

import (
	"strings"

	"github.com/rking788/ogre-material-manager/assets"
)

const (
	// NamePrefix is the namespace every generated material name lives under.
	NamePrefix = "/global/"

	// ParentSimple is the parent material for diffuse-only assets.
	ParentSimple = "/base/simple"

	// ParentNormalMap is the parent material for assets with a normal map
	// but no specular map.
	ParentNormalMap = "/base/normalmap"

	// ParentNormalMapSpecular is the parent material for assets with both a
	// normal map and a specular map.
	ParentNormalMapSpecular = "/base/normalmap/specular"

	// alphaParentSuffix is appended to the parent for alpha-bearing diffuse
	// textures.
	alphaParentSuffix = "/nonculled/alpharejected"
)

// strippedSegments are removed from the relative path wherever they occur
// before the name prefix is applied. The removal is deliberately unanchored,
// matching the original pipeline; a path that happens to contain one of
// these substrings mid-segment is altered too.
var strippedSegments = []string{"textures/", "3d_objects/", "3d_skeletons/"}

// Material is one classified asset directory, carrying everything the
// writers need to render its script.
type Material struct {
	Directory *assets.Directory
	RelDir    string
	Name      string
	Parent    string
	Textures  assets.TexturePresence
}

// New inspects the asset directory and builds the fully classified material
// for it.
func New(dir *assets.Directory) (*Material, error) {

	relDir, err := dir.RelPath()
	if err != nil {
		return nil, err
	}

	presence, err := assets.InspectDirectory(dir)
	if err != nil {
		return nil, err
	}

	return &Material{
		Directory: dir,
		RelDir:    relDir,
		Name:      Name(relDir),
		Parent:    ParentMaterial(presence),
		Textures:  presence,
	}, nil
}

// ScriptFile returns the path the material script for this material is
// expected at.
func (m *Material) ScriptFile() string {
	return m.Directory.MaterialFile()
}

// Name derives the material name from a directory's slash-form path
// relative to the scan root. The same input always yields the same name.
func Name(relDir string) string {

	name := relDir
	for _, segment := range strippedSegments {
		name = strings.Replace(name, segment, "", -1)
	}

	return NamePrefix + name
}

// ParentMaterial picks the parent material for the given texture presence
// flags.
func ParentMaterial(presence assets.TexturePresence) string {

	parent := ParentSimple
	if presence.Normal && presence.Specular {
		parent = ParentNormalMapSpecular
	} else if presence.Normal {
		parent = ParentNormalMap
	}

	// We assume that all alpha materials are nonculled -- TODO
	if presence.AlphaDiffuse {
		parent += alphaParentSuffix
	}

	return parent
}
