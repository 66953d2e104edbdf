package main

import (
	"flag"
	"log"
	"net/http"

	perf "github.com/Paramesht/aircraft-performance-simulator"
)

var (
	addr         string
	aircraftFile string
)

func init() {
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&aircraftFile, "aircraft", "", "optional YAML file with extra aircraft definitions")
}

func main() {
	flag.Parse()
	var extra []perf.Aircraft
	if aircraftFile != "" {
		loaded, err := perf.LoadAircraftFile(aircraftFile)
		if err != nil {
			log.Fatalf("could not load aircraft file `%s`: %s", aircraftFile, err)
		}
		extra = loaded
	}
	srv := newServer(extra)
	log.Printf("dashboard: listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, srv.router()))
}
