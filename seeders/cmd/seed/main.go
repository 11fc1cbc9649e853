package main

import (
	"context"
	"flag"
	"log"

	"github.com/Nduhiu17/treasure-shop-api/pkg/config"
	"github.com/Nduhiu17/treasure-shop-api/pkg/database/postgresql"
	"github.com/Nduhiu17/treasure-shop-api/seeders"
)

func main() {
	runCatalog := flag.Bool("catalog", false, "seed the catalog dictionaries (order types, levels, urgencies, styles, languages)")
	runAdmin := flag.Bool("admin", false, "create the bootstrap super admin user")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runCatalog && !*runAdmin && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	ctx := context.Background()

	db, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if *runCatalog || *runAll {
		if err := seeders.SeedCatalog(ctx, db); err != nil {
			log.Fatalf("catalog seeder failed: %v", err)
		}
	}
	if *runAdmin || *runAll {
		if err := seeders.SeedSuperAdmin(ctx, db); err != nil {
			log.Fatalf("super admin seeder failed: %v", err)
		}
	}

	log.Println("seeding finished")
}
