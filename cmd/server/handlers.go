package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/kpango/glg"
	"github.com/rking788/ogre-material-manager/assets"
	"github.com/rking788/ogre-material-manager/db"
	"github.com/rking788/ogre-material-manager/materials"
)

// materialStatus is one entry in the scan report returned to clients.
type materialStatus struct {
	Name     string                 `json:"name"`
	Parent   string                 `json:"parent"`
	Script   string                 `json:"script"`
	Textures assets.TexturePresence `json:"textures"`
	Exists   bool                   `json:"exists"`
	Valid    bool                   `json:"valid"`
}

func scanMaterials() ([]*materials.Material, error) {

	directories, err := assets.Scan(assetRoot)
	if err != nil {
		return nil, err
	}

	mats := make([]*materials.Material, 0, len(directories))
	for _, dir := range directories {
		m, err := materials.New(dir)
		if err != nil {
			return nil, err
		}
		mats = append(mats, m)
	}

	return mats, nil
}

// GetMissingMaterials returns the paths of every expected material file
// that does not exist yet.
func GetMissingMaterials(w http.ResponseWriter, r *http.Request) {

	mats, err := scanMaterials()
	if err != nil {
		glg.Errorf("Failed to scan asset tree: %s", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Something went wrong scanning the asset tree"))
		return
	}

	missing := make([]string, 0, len(mats))
	for _, m := range mats {
		if !assets.FileExists(m.ScriptFile()) {
			missing = append(missing, m.ScriptFile())
		}
	}

	writeJSON(w, missing)
}

// GetInvalidMaterials returns the paths of every existing material file
// that does not mention its expected material name.
func GetInvalidMaterials(w http.ResponseWriter, r *http.Request) {

	mats, err := scanMaterials()
	if err != nil {
		glg.Errorf("Failed to scan asset tree: %s", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Something went wrong scanning the asset tree"))
		return
	}

	invalid := make([]string, 0, len(mats))
	for _, m := range mats {
		if !assets.FileExists(m.ScriptFile()) {
			continue
		}

		valid, err := materials.IsValid(m.ScriptFile(), m.Name)
		if err != nil {
			glg.Errorf("Failed to validate %s: %s", m.ScriptFile(), err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Something went wrong validating a material file"))
			return
		}
		if !valid {
			invalid = append(invalid, m.ScriptFile())
		}
	}

	writeJSON(w, invalid)
}

// GetMaterialReport returns the full status of every discovered material.
func GetMaterialReport(w http.ResponseWriter, r *http.Request) {

	mats, err := scanMaterials()
	if err != nil {
		glg.Errorf("Failed to scan asset tree: %s", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Something went wrong scanning the asset tree"))
		return
	}

	report := make([]*materialStatus, 0, len(mats))
	for _, m := range mats {
		status := &materialStatus{
			Name:     m.Name,
			Parent:   m.Parent,
			Script:   m.ScriptFile(),
			Textures: m.Textures,
		}

		if assets.FileExists(m.ScriptFile()) {
			status.Exists = true
			status.Valid, err = materials.IsValid(m.ScriptFile(), m.Name)
			if err != nil {
				glg.Errorf("Failed to validate %s: %s", m.ScriptFile(), err.Error())
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Something went wrong validating a material file"))
				return
			}
		}

		report = append(report, status)
	}

	writeJSON(w, report)
}

// GetMaterialScript serves an existing material file under the asset root
// as an attachment.
func GetMaterialScript(w http.ResponseWriter, r *http.Request) {

	dir := r.URL.Query().Get("dir")
	if dir == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Forgot to specify an asset directory"))
		return
	}
	if strings.Contains(dir, "..") || filepath.IsAbs(dir) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invalid asset directory specified"))
		return
	}

	path := filepath.Join(assetRoot, filepath.FromSlash(dir), assets.MaterialFileName)
	if !assets.FileExists(path) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("No material file found for the specified directory"))
		return
	}

	contents, err := ioutil.ReadFile(path)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to read the material file from disk"))
		return
	}

	w.Header().Set("Content-type", "text/plain")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", assets.MaterialFileName))
	http.ServeContent(w, r, assets.MaterialFileName, time.Now(), bytes.NewReader(contents))
}

// GetMaterialRecord looks up a generated material in the catalog database.
func GetMaterialRecord(w http.ResponseWriter, r *http.Request) {

	name := r.URL.Query().Get("name")
	if name == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Forgot to specify a material name"))
		return
	}

	if !db.Enabled() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("No material catalog database is configured"))
		return
	}

	record, err := assets.GetMaterialRecord(name)
	if err == sql.ErrNoRows {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("No material found with the specified name"))
		return
	}
	if err != nil {
		glg.Errorf("Failed to look up material record: %s", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Something went wrong reading the material catalog"))
		return
	}

	writeJSON(w, record)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.Encode(v)
}
