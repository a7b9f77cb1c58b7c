package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-math/api"
)

func main() {

	fs := flag.NewFlagSet("nav-math", flag.ExitOnError)
	var (
		port       = fs.Int("port", 8888, "listen port")
		debug      = fs.Bool("debug", false, "debug logs")
		cpuprofile = fs.Bool("cpuprofile", false, "profile latitude crossing requests")
	)
	ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix())

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	router := api.InitServer(*cpuprofile)

	access := log.StandardLogger().WriterLevel(log.DebugLevel)
	defer access.Close()

	log.Infof("Start server on port %d", *port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *port), handlers.CombinedLoggingHandler(access, router)))
}
