package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated site locally",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		outputDir, _ := cmd.Flags().GetString("output-dir")

		router := mux.NewRouter()
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(outputDir)))

		fmt.Printf("Serving %s on port %s\n", outputDir, port)
		log.Fatal(http.ListenAndServe(":"+port, router))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
	serveCmd.Flags().StringP("output-dir", "o", "public", "Directory to serve")
}
