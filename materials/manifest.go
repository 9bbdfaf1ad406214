package materials

import (
	"os"

	"github.com/beevik/etree"
	"github.com/kpango/glg"
)

// ManifestWriter is responsible for writing an XML manifest describing
// every material discovered by a scan, for consumption by downstream build
// steps.
type ManifestWriter struct {
	Path string
}

// Write renders the manifest for the given materials, in scan order, and
// writes it to the writer's path.
func (mw *ManifestWriter) Write(root string, mats []*Material) error {

	glg.Infof("Writing material manifest %s", mw.Path)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	manifest := doc.CreateElement("materials")
	manifest.CreateAttr("root", root)

	for _, m := range mats {
		elem := manifest.CreateElement("material")
		elem.CreateAttr("name", m.Name)
		elem.CreateAttr("parent", m.Parent)
		elem.CreateAttr("script", m.ScriptFile())

		writeTextureElement(elem, "DiffuseMap", m.RelDir+"/D.png", m.Textures.AlphaDiffuse)
		if m.Textures.Normal {
			writeTextureElement(elem, "NormalHeightMap", m.RelDir+"/N.png", false)
		}
		if m.Textures.Specular {
			writeTextureElement(elem, "SpecularMap", m.RelDir+"/S.png", false)
		}
	}

	doc.Indent(2)

	outF, err := os.OpenFile(mw.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer outF.Close()

	_, err = doc.WriteTo(outF)

	return err
}

func writeTextureElement(parent *etree.Element, slot, file string, alpha bool) {
	texture := parent.CreateElement("texture")
	texture.CreateAttr("slot", slot)
	texture.CreateAttr("file", file)
	if alpha {
		texture.CreateAttr("alpha", "true")
	}
}
