package assets

import (
	"encoding/json"

	"github.com/rking788/ogre-material-manager/db"
	"github.com/tidwall/gjson"
)

// MaterialRecord is the catalog entry stored for a generated material. The
// database keeps these as JSON documents keyed by material name.
type MaterialRecord struct {
	Name      string          `json:"name"`
	Directory string          `json:"directory"`
	Parent    string          `json:"parent"`
	Script    string          `json:"script"`
	Textures  TexturePresence `json:"textures"`
}

// RecordMaterial writes the record into the catalog database, replacing any
// previous record for the same material name.
func RecordMaterial(record *MaterialRecord) error {

	conn, err := db.GetMaterialDBConnection()
	if err != nil {
		return err
	}

	doc, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return conn.UpsertMaterial(record.Name, string(doc))
}

// GetMaterialRecord looks up the catalog entry for the named material.
func GetMaterialRecord(name string) (*MaterialRecord, error) {

	conn, err := db.GetMaterialDBConnection()
	if err != nil {
		return nil, err
	}

	doc, err := conn.GetMaterial(name)
	if err != nil {
		return nil, err
	}

	return ParseMaterialRecord(doc), nil
}

// ParseMaterialRecord decodes a stored catalog document. Fields absent from
// the document come back as zero values rather than errors.
func ParseMaterialRecord(doc string) *MaterialRecord {

	result := gjson.Parse(doc)

	return &MaterialRecord{
		Name:      result.Get("name").String(),
		Directory: result.Get("directory").String(),
		Parent:    result.Get("parent").String(),
		Script:    result.Get("script").String(),
		Textures: TexturePresence{
			Normal:       result.Get("textures.normal").Bool(),
			Specular:     result.Get("textures.specular").Bool(),
			AlphaDiffuse: result.Get("textures.alphaDiffuse").Bool(),
		},
	}
}
