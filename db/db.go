package db

import (
	"fmt"
	"os"

	"database/sql"

	_ "github.com/lib/pq" // Only want to import the interface here
)

// MaterialDB represents the database containing the catalog of generated
// material definitions. The catalog is optional and only used when a
// DATABASE_URL is configured for the run.
type MaterialDB struct {
	Database *sql.DB
}

var materialDB *MaterialDB

// Enabled reports whether a catalog database is configured.
func Enabled() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// initMaterialDatabase is in charge of setting up the database connection
// pool and making sure the materials table exists.
func initMaterialDatabase() error {

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		fmt.Println("DB errror: ", err.Error())
		return err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS materials (
		name TEXT PRIMARY KEY,
		json TEXT NOT NULL
	)`)
	if err != nil {
		return err
	}

	materialDB = &MaterialDB{
		Database: db,
	}

	return nil
}

// GetMaterialDBConnection is a helper for getting a connection to the DB based on
// environment variables or some other method.
func GetMaterialDBConnection() (*MaterialDB, error) {

	if materialDB == nil {
		fmt.Println("Initializing db!")
		err := initMaterialDatabase()
		if err != nil {
			fmt.Println("Failed to initialize the database: ", err.Error())
			return nil, err
		}
	}

	return materialDB, nil
}

// UpsertMaterial stores the JSON document describing a generated material,
// replacing any document previously recorded under the same name.
func (db *MaterialDB) UpsertMaterial(name, json string) error {

	_, err := db.Database.Exec(`INSERT INTO materials (name, json) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET json = EXCLUDED.json`, name, json)

	return err
}

// GetMaterial returns the stored JSON document for the named material.
func (db *MaterialDB) GetMaterial(name string) (string, error) {

	json := ""
	err := db.Database.QueryRow("SELECT json FROM materials where name = $1", name).Scan(&json)
	if err != nil {
		return "", err
	}

	return json, nil
}
