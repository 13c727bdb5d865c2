package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/myyapa/discover/pkg/datastructure"
	"github.com/myyapa/discover/pkg/kvdb"

	ansi "github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	bolt "go.etcd.io/bbolt"
)

var (
	placesFile = flag.String("f", "places.json", "place export to load into the store")
	dbPath     = flag.String("o", "places.db", "output bbolt database")
)

const loadBatchSize = 200

func main() {
	flag.Parse()

	f, err := os.Open(*placesFile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var places []datastructure.Place
	if err := json.NewDecoder(f).Decode(&places); err != nil {
		log.Fatal(err)
	}

	valid := places[:0]
	for _, place := range places {
		if err := validatePlace(place); err != nil {
			log.Printf("skipping place %q: %v", place.ID, err)
			continue
		}
		valid = append(valid, place)
	}

	db, err := bolt.Open(*dbPath, 0600, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	kvDB, err := kvdb.NewKVDB(db)
	if err != nil {
		log.Fatal(err)
	}

	bar := progressbar.NewOptions(len(valid),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]Loading places..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for start := 0; start < len(valid); start += loadBatchSize {
		end := start + loadBatchSize
		if end > len(valid) {
			end = len(valid)
		}
		if err := kvDB.SavePlaces(valid[start:end]); err != nil {
			log.Fatal(err)
		}
		bar.Add(end - start)
	}

	fmt.Printf("\nloaded %d places into %s (%d skipped)\n", len(valid), *dbPath, len(places)-len(valid))
}

func validatePlace(place datastructure.Place) error {
	if place.ID == "" {
		return fmt.Errorf("empty id")
	}
	if place.Name == "" {
		return fmt.Errorf("empty name")
	}
	if math.IsNaN(place.Lat) || place.Lat < -90 || place.Lat > 90 {
		return fmt.Errorf("latitude %f out of range", place.Lat)
	}
	if math.IsNaN(place.Lng) || place.Lng < -180 || place.Lng > 180 {
		return fmt.Errorf("longitude %f out of range", place.Lng)
	}
	if len(place.Categories) == 0 {
		return fmt.Errorf("no categories")
	}
	if place.AvgRating < 0 {
		return fmt.Errorf("negative rating %f", place.AvgRating)
	}
	return nil
}
