package main

import (
	"flag"
	"html/template"
	"os"
	"sort"

	"github.com/kpango/glg"
	"github.com/rking788/ogre-material-manager/assets"
	"github.com/rking788/ogre-material-manager/materials"
)

type materialMetadata struct {
	Name     string
	Parent   string
	Script   string
	Normal   bool
	Specular bool
	Alpha    bool
	Valid    bool
}

type output struct {
	Root      string
	Materials []*materialMetadata
}

const galleryTemplate = `<!DOCTYPE html>
<html>
<head><title>Material Index</title></head>
<body>
<h1>Materials under {{.Root}}</h1>
<table border="1">
<tr><th>Name</th><th>Parent</th><th>Normal</th><th>Specular</th><th>Alpha</th><th>Valid</th></tr>
{{range .Materials}}<tr>
<td><a href="{{.Script}}">{{.Name}}</a></td>
<td>{{.Parent}}</td>
<td>{{if .Normal}}yes{{end}}</td>
<td>{{if .Specular}}yes{{end}}</td>
<td>{{if .Alpha}}yes{{end}}</td>
<td>{{if .Valid}}yes{{else}}no{{end}}</td>
</tr>
{{end}}</table>
</body>
</html>
`

func main() {

	root := flag.String("root", "", "The root of the texture asset tree to index.")
	outPath := flag.String("out", "index.html", "The path the HTML index should be written to.")

	flag.Parse()

	scanRoot := *root
	if scanRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			glg.Errorf("Failed to read the working directory: %s", err.Error())
			return
		}
		scanRoot = wd
	}

	directories, err := assets.Scan(scanRoot)
	if err != nil {
		glg.Errorf("Error scanning the asset tree: %s", err.Error())
		return
	}

	templateData := output{Root: scanRoot}
	templateData.Materials = make([]*materialMetadata, 0, len(directories))

	for _, dir := range directories {
		m, err := materials.New(dir)
		if err != nil {
			glg.Errorf("Error classifying %s: %s", dir.Path, err.Error())
			return
		}

		meta := &materialMetadata{
			Name:     m.Name,
			Parent:   m.Parent,
			Script:   m.ScriptFile(),
			Normal:   m.Textures.Normal,
			Specular: m.Textures.Specular,
			Alpha:    m.Textures.AlphaDiffuse,
		}

		if assets.FileExists(m.ScriptFile()) {
			meta.Valid, err = materials.IsValid(m.ScriptFile(), m.Name)
			if err != nil {
				glg.Errorf("Error validating %s: %s", m.ScriptFile(), err.Error())
				return
			}
		}

		templateData.Materials = append(templateData.Materials, meta)
	}

	glg.Infof("About to write %d materials to the HTML index", len(templateData.Materials))

	sort.Sort(sortName(templateData.Materials))

	outF, err := os.OpenFile(*outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		glg.Errorf("Error opening %s: %s", *outPath, err.Error())
		return
	}
	defer outF.Close()

	tpl := template.Must(template.New("gallery").Parse(galleryTemplate))
	err = tpl.Execute(outF, templateData)
	if err != nil {
		glg.Errorf("Error rendering the HTML index: %s", err.Error())
		return
	}
}

type sortName []*materialMetadata

func (n sortName) Len() int           { return len(n) }
func (n sortName) Swap(i, j int)      { n[i], n[j] = n[j], n[i] }
func (n sortName) Less(i, j int) bool { return n[i].Name < n[j].Name }
