package cmd

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/tunedex/tunedex/constants"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the built index over HTTP",
	Long:  `Serves the built index over HTTP for the web app to download`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func handleData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, filepath.Join(constants.GetDataDir(), constants.DataFileName))
}

func handleMeta(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, filepath.Join(constants.GetDataDir(), constants.MetaFileName))
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/nud", handleData).Methods("GET")
	router.HandleFunc("/meta", handleMeta).Methods("GET")

	// The web app is served from a different origin.
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
