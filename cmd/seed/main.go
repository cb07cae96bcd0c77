// CLI tool to seed demo data for a user: a few months of progress entries
// with a gentle downward weight trend, plus some community posts.
// Usage: go run ./cmd/seed -user 1 -days 90 (from the repo root)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	userID := flag.Int("user", 0, "user id to seed data for")
	days := flag.Int("days", 90, "number of days of progress history")
	posts := flag.Int("posts", 5, "number of community posts")
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	// Start from a plausible weight and drift it down with daily noise.
	weight := gofakeit.Float64Range(70, 95)
	bodyFat := gofakeit.Float64Range(18, 30)
	today := time.Now().UTC()

	entries := 0
	for i := *days - 1; i >= 0; i-- {
		// Skip roughly a third of days — real logs have gaps.
		if gofakeit.Number(0, 2) == 0 {
			continue
		}
		weight += gofakeit.Float64Range(-0.4, 0.25)
		bodyFat += gofakeit.Float64Range(-0.15, 0.1)

		date := today.AddDate(0, 0, -i).Format("2006-01-02")

		// Body fat is measured less often than weight.
		var bf *float64
		if gofakeit.Bool() {
			v := bodyFat
			bf = &v
		}

		_, err := conn.Exec(ctx,
			`INSERT INTO progress_log (user_id, date, weight_kg, body_fat_pct)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (user_id, date) DO UPDATE
			   SET weight_kg = EXCLUDED.weight_kg, body_fat_pct = EXCLUDED.body_fat_pct`,
			*userID, date, weight, bf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error inserting entry for %s: %v\n", date, err)
			os.Exit(1)
		}
		entries++
	}

	for i := 0; i < *posts; i++ {
		_, err := conn.Exec(ctx,
			"INSERT INTO posts (user_id, content) VALUES ($1, $2)",
			*userID, gofakeit.Sentence(gofakeit.Number(8, 20)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error inserting post: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %d progress entries and %d posts for user %d.\n", entries, *posts, *userID)
}
