package main

import (
	"flag"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kpango/glg"
	"github.com/rking788/ogre-material-manager/assets"
)

func main() {

	inPath := flag.String("path", "", "The path to the asset directory whose textures should be inspected.")
	flag.Parse()

	if *inPath == "" {
		glg.Errorf("Forgot to specify a path to an asset directory")
		return
	}

	diffusePath := filepath.Join(*inPath, assets.DiffuseTextureName)
	f, err := os.Open(diffusePath)
	if err != nil {
		glg.Errorf("No readable diffuse texture at %s: %s", diffusePath, err.Error())
		return
	}
	defer f.Close()

	config, err := png.DecodeConfig(f)
	if err != nil {
		glg.Errorf("Failed to decode the diffuse texture header: %s", err.Error())
		return
	}

	alpha, err := assets.HasAlphaDiffuseMap(*inPath)
	if err != nil {
		glg.Errorf("Failed to read the diffuse texture header: %s", err.Error())
		return
	}

	glg.Infof("Diffuse texture: %dx%d alpha=%v", config.Width, config.Height, alpha)
	glg.Infof("Normal map present: %v", assets.HasNormalMap(*inPath))
	glg.Infof("Specular map present: %v", assets.HasSpecularMap(*inPath))
}
