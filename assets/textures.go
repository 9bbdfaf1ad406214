package assets

import (
	"io"
	"os"
	"path/filepath"
)

const (
	// diffuseHeaderLength is how much of D.png needs to be read to find the
	// pixel format: the PNG signature plus the IHDR chunk up through the
	// color type byte.
	diffuseHeaderLength = 26

	// rgbaColorType is the IHDR color type value for truecolor with alpha.
	rgbaColorType = 6
)

// InspectDirectory computes the texture presence flags for one asset
// directory. Missing texture files are an ordinary false, not an error.
func InspectDirectory(d *Directory) (TexturePresence, error) {

	presence := TexturePresence{
		Normal:   HasNormalMap(d.Path),
		Specular: HasSpecularMap(d.Path),
	}

	alpha, err := HasAlphaDiffuseMap(d.Path)
	if err != nil {
		return presence, err
	}
	presence.AlphaDiffuse = alpha

	return presence, nil
}

// HasNormalMap reports whether a normal map texture exists in the directory.
func HasNormalMap(directory string) bool {
	return FileExists(filepath.Join(directory, NormalTextureName))
}

// HasSpecularMap reports whether a specular map texture exists in the directory.
func HasSpecularMap(directory string) bool {
	return FileExists(filepath.Join(directory, SpecularTextureName))
}

// HasAlphaDiffuseMap reports whether the directory's diffuse texture carries
// an alpha channel, by reading the color type byte out of the PNG header.
// A missing D.png or a header shorter than 26 bytes is silently "no alpha";
// real read failures are returned.
func HasAlphaDiffuseMap(directory string) (bool, error) {

	f, err := os.Open(filepath.Join(directory, DiffuseTextureName))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	header := make([]byte, diffuseHeaderLength)
	_, err = io.ReadFull(f, header)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// Truncated header, treat as no alpha channel.
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return header[diffuseHeaderLength-1] == rgbaColorType, nil
}
