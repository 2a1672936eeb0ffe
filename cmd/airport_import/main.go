package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"skyward/farecast/internal/common"
	"skyward/farecast/internal/db"
	gormModels "skyward/farecast/internal/models/gorm"
)

// Imports an airports JSON document (local file or URL) into the airports
// table, replacing whatever is there. The server picks the new directory up
// on its next start.
func main() {
	file := flag.String("file", "", "path to an airports JSON document")
	url := flag.String("url", "", "URL of an airports JSON document")
	flag.Parse()

	if (*file == "") == (*url == "") {
		log.Fatal("exactly one of -file or -url is required")
	}

	if _, err := db.InitPostgresORM(db.PostgresDSN()); err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	if err := db.PgDB.AutoMigrate(&gormModels.Airport{}); err != nil {
		log.Fatalf("migrate airports table: %v", err)
	}

	loader := common.NewAirportLoaderService(db.PgDB)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var (
		count int
		err   error
	)
	if *file != "" {
		f, openErr := os.Open(*file)
		if openErr != nil {
			log.Fatalf("open %s: %v", *file, openErr)
		}
		defer f.Close()
		count, err = loader.LoadFromJSON(ctx, f)
	} else {
		count, err = loader.LoadFromURL(ctx, *url)
	}
	if err != nil {
		log.Fatalf("import airports: %v", err)
	}

	fmt.Println("Imported airports:", count)
}
