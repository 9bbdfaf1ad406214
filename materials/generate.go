package materials

import (
	"bytes"
	"os"
	"text/template"

	"github.com/kpango/glg"
)

// materialScript is the fixed script grammar the material interpreter
// consumes. The literal tokens are load-bearing; only the name, parent, and
// relative texture paths vary.
const materialScript = `import * from "resources/ogre/scripts/materials/base.material"
{{if .Textures.AlphaDiffuse}}import * from "resources/ogre/scripts/programs/DepthShadowmap.material"
material {{.Name}}/shadowcaster : Ogre/DepthShadowmap/Caster/Float
{
    set_texture_alias DiffuseMap {{.RelDir}}/D.png
}
{{end}}material {{.Name}} : {{.Parent}}
{
    set_texture_alias DiffuseMap {{.RelDir}}/D.png
{{if .Textures.AlphaDiffuse}}    set $shadow_caster_material {{.Name}}/shadowcaster
{{end}}{{if .Textures.Normal}}    set_texture_alias NormalHeightMap {{.RelDir}}/N.png
{{end}}{{if .Textures.Specular}}    set_texture_alias SpecularMap {{.RelDir}}/S.png
{{end}}}`

var scriptTemplate = template.Must(template.New("material").Parse(materialScript))

// Render returns the script content for the material. The output is fully
// determined by the material's name, parent, relative path, and texture
// flags.
func Render(m *Material) ([]byte, error) {

	buf := &bytes.Buffer{}
	err := scriptTemplate.Execute(buf, m)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ScriptWriter is responsible for writing a generated material script to a
// material file on disk.
type ScriptWriter struct {
	Path string
}

// Write renders the material and writes it to the writer's path, truncating
// any previous content.
func (sw *ScriptWriter) Write(m *Material) error {

	glg.Infof("Generating material file %s", sw.Path)

	content, err := Render(m)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(sw.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(content)

	return err
}
