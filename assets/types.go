package assets

import (
	"fmt"
	"path/filepath"
)

const (
	// DiffuseTextureName is the base color map. A directory is only treated
	// as an asset directory if this file is present.
	DiffuseTextureName = "D.png"

	// NormalTextureName is the normal/height perturbation map.
	NormalTextureName = "N.png"

	// SpecularTextureName is the reflectivity map.
	SpecularTextureName = "S.png"

	// MaterialFileName is the generated material script written next to the
	// textures.
	MaterialFileName = "ogre.material"
)

// Directory is one asset directory discovered during a scan, identified by
// its absolute path together with the root the scan started from.
type Directory struct {
	Path string
	Root string
}

func (d *Directory) String() string {
	return fmt.Sprintf("{Path:%s Root:%s}", d.Path, d.Root)
}

// MaterialFile returns the path of the material script expected in this
// directory, whether or not it exists yet.
func (d *Directory) MaterialFile() string {
	return filepath.Join(d.Path, MaterialFileName)
}

// RelPath returns the directory's path relative to the scan root in slash
// form. The slash form is what ends up inside generated scripts, so it is
// normalized here rather than at every call site.
func (d *Directory) RelPath() (string, error) {
	rel, err := filepath.Rel(d.Root, d.Path)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// TexturePresence holds the per-directory texture flags. These are
// recomputed on every run and never persisted.
type TexturePresence struct {
	Normal       bool `json:"normal"`
	Specular     bool `json:"specular"`
	AlphaDiffuse bool `json:"alphaDiffuse"`
}

func (t TexturePresence) String() string {
	return fmt.Sprintf("{Normal:%v Specular:%v AlphaDiffuse:%v}", t.Normal, t.Specular, t.AlphaDiffuse)
}
