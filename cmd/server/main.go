package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/kpango/glg"
)

// assetRoot is the texture tree served by this instance, set once at
// startup.
var assetRoot string

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		glg.Error("Forgot to specify a port")
		return
	}

	assetRoot = os.Getenv("ASSET_ROOT")
	if assetRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			glg.Errorf("Failed to read the working directory: %s", err.Error())
			return
		}
		assetRoot = wd
	}

	glg.Infof("Serving material reports for asset root: %s", assetRoot)

	router := mux.NewRouter()
	router.HandleFunc("/materials/missing", GetMissingMaterials).Methods("GET")
	router.HandleFunc("/materials/invalid", GetInvalidMaterials).Methods("GET")
	router.HandleFunc("/materials/report", GetMaterialReport).Methods("GET")
	router.HandleFunc("/material", GetMaterialScript).Methods("GET")
	router.HandleFunc("/material/record", GetMaterialRecord).Methods("GET")

	glg.Error(http.ListenAndServe(":"+port, router))
}
