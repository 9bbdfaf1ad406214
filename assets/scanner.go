package assets

import (
	"os"
	"path/filepath"
)

// Scan walks the tree rooted at root and returns every directory containing
// a diffuse texture, in walk order. Directories without a D.png are not
// asset directories and are never surfaced to any mode.
func Scan(root string) ([]*Directory, error) {

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	directories := make([]*Directory, 0, 64)
	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || info.Name() != DiffuseTextureName {
			return nil
		}

		directories = append(directories, &Directory{
			Path: filepath.Dir(path),
			Root: absRoot,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return directories, nil
}

// FileExists reports whether a regular file exists at path.
func FileExists(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}

	return true
}
