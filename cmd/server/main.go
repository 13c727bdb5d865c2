package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/myyapa/discover/pkg/di"

	"github.com/spf13/viper"
)

var (
	listenPort = flag.Int("port", 6060, "API listen port")
	dbPath     = flag.String("db", "places.db", "bbolt place store written by cmd/loader")
)

func main() {
	flag.Parse()
	viper.SetDefault("API_PORT", *listenPort)
	viper.SetDefault("DB_PATH", *dbPath)

	_, cleanup, err := di.InitializeDiscoverService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}
