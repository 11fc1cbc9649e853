package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var orderTypesData = []struct {
	Name             string
	BasePricePerPage string
}{
	{Name: "Essay", BasePricePerPage: "10.00"},
	{Name: "Research Paper", BasePricePerPage: "12.00"},
	{Name: "Coursework", BasePricePerPage: "11.00"},
	{Name: "Term Paper", BasePricePerPage: "12.50"},
	{Name: "Case Study", BasePricePerPage: "13.00"},
	{Name: "Dissertation", BasePricePerPage: "20.00"},
	{Name: "Editing & Proofreading", BasePricePerPage: "6.00"},
}

var academicLevelsData = []struct {
	Name       string
	Multiplier string
}{
	{Name: "High School", Multiplier: "1.00"},
	{Name: "Undergraduate", Multiplier: "1.20"},
	{Name: "Masters", Multiplier: "1.50"},
	{Name: "PhD", Multiplier: "2.00"},
}

var urgenciesData = []struct {
	Name       string
	Hours      int
	Multiplier string
}{
	{Name: "6 hours", Hours: 6, Multiplier: "2.00"},
	{Name: "12 hours", Hours: 12, Multiplier: "1.80"},
	{Name: "24 hours", Hours: 24, Multiplier: "1.50"},
	{Name: "3 days", Hours: 72, Multiplier: "1.20"},
	{Name: "7 days", Hours: 168, Multiplier: "1.00"},
	{Name: "14 days", Hours: 336, Multiplier: "0.90"},
}

var writingStylesData = []string{"APA", "MLA", "Chicago", "Harvard", "IEEE"}

var languagesData = []string{"English (US)", "English (UK)"}

// SeedCatalog fills the priced option dictionaries. Additive: existing
// rows keep their prices, only missing names are inserted.
func SeedCatalog(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding catalog tables...")

	for _, ot := range orderTypesData {
		_, err := db.Exec(ctx,
			`INSERT INTO order_types (id, name, base_price_per_page) VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			uuid.New(), ot.Name, ot.BasePricePerPage)
		if err != nil {
			return fmt.Errorf("failed to seed order type %q: %w", ot.Name, err)
		}
	}

	for _, al := range academicLevelsData {
		_, err := db.Exec(ctx,
			`INSERT INTO academic_levels (id, name, multiplier) VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			uuid.New(), al.Name, al.Multiplier)
		if err != nil {
			return fmt.Errorf("failed to seed academic level %q: %w", al.Name, err)
		}
	}

	for _, u := range urgenciesData {
		_, err := db.Exec(ctx,
			`INSERT INTO urgencies (id, name, hours, multiplier) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (name) DO NOTHING`,
			uuid.New(), u.Name, u.Hours, u.Multiplier)
		if err != nil {
			return fmt.Errorf("failed to seed urgency %q: %w", u.Name, err)
		}
	}

	for _, name := range writingStylesData {
		_, err := db.Exec(ctx,
			`INSERT INTO writing_styles (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			uuid.New(), name)
		if err != nil {
			return fmt.Errorf("failed to seed writing style %q: %w", name, err)
		}
	}

	for _, name := range languagesData {
		_, err := db.Exec(ctx,
			`INSERT INTO languages (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			uuid.New(), name)
		if err != nil {
			return fmt.Errorf("failed to seed language %q: %w", name, err)
		}
	}

	log.Println("    - catalog seeded")
	return nil
}
