package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpango/glg"
	"github.com/rking788/ogre-material-manager/assets"
	"github.com/rking788/ogre-material-manager/db"
	"github.com/rking788/ogre-material-manager/materials"
)

const (
	ModeFindMissing   = "find-missing"
	ModeCreateMissing = "create-missing"
	ModeFindInvalid   = "find-invalid"
	ModeRefresh       = "refresh"
)

func main() {

	root := flag.String("root", "", "The root of the texture asset tree to scan. Defaults to the current working directory.")
	manifestPath := flag.String("manifest", "", "Optional path to write an XML manifest of all discovered materials to.")
	flag.Usage = usage
	flag.Parse()

	mode := flag.Arg(0)
	switch mode {
	case ModeFindMissing, ModeCreateMissing, ModeFindInvalid, ModeRefresh:
	default:
		usage()
		os.Exit(2)
	}

	scanRoot := *root
	if scanRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			glg.Errorf("Failed to read the working directory: %s", err.Error())
			os.Exit(1)
		}
		scanRoot = wd
	}

	directories, err := assets.Scan(scanRoot)
	if err != nil {
		glg.Errorf("Failed to scan asset tree: %s", err.Error())
		os.Exit(1)
	}

	processed := make([]*materials.Material, 0, len(directories))
	for _, dir := range directories {
		material, err := materials.New(dir)
		if err != nil {
			glg.Errorf("Failed to classify %s: %s", dir.Path, err.Error())
			os.Exit(1)
		}

		if err = processDirectory(mode, material); err != nil {
			glg.Errorf("Failed processing %s: %s", dir.Path, err.Error())
			os.Exit(1)
		}

		processed = append(processed, material)
	}

	if *manifestPath != "" {
		writer := &materials.ManifestWriter{Path: *manifestPath}
		if err = writer.Write(scanRoot, processed); err != nil {
			glg.Errorf("Failed to write manifest: %s", err.Error())
			os.Exit(1)
		}
	}
}

// processDirectory applies one mode to one classified asset directory.
func processDirectory(mode string, m *materials.Material) error {

	materialFile := m.ScriptFile()
	exists := assets.FileExists(materialFile)

	switch mode {
	case ModeFindMissing:
		if !exists {
			fmt.Println(materialFile)
		}
	case ModeCreateMissing:
		if !exists {
			return generateMaterial(m)
		}
	case ModeRefresh:
		os.Remove(materialFile)
		return generateMaterial(m)
	case ModeFindInvalid:
		if exists {
			valid, err := materials.IsValid(materialFile, m.Name)
			if err != nil {
				return err
			}
			if !valid {
				fmt.Println(materialFile)
			}
		}
	}

	return nil
}

func generateMaterial(m *materials.Material) error {

	writer := &materials.ScriptWriter{Path: m.ScriptFile()}
	if err := writer.Write(m); err != nil {
		return err
	}

	return recordMaterial(m)
}

// recordMaterial stores the generated material in the catalog database when
// one is configured; otherwise it is a silent no-op.
func recordMaterial(m *materials.Material) error {

	if !db.Enabled() {
		return nil
	}

	return assets.RecordMaterial(&assets.MaterialRecord{
		Name:      m.Name,
		Directory: m.Directory.Path,
		Parent:    m.Parent,
		Script:    m.ScriptFile(),
		Textures:  m.Textures,
	})
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: matman [options] {find-missing|create-missing|find-invalid|refresh}")
	flag.PrintDefaults()
}
