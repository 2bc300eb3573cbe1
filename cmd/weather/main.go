package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/lmoraes/dexbook/internal/weather"
)

func main() {
	format := pflag.StringP("format", "f", "text", "output format: text or json")
	limit := pflag.IntP("limit", "n", 10, "history entries to list")
	showHistory := pflag.BoolP("history", "H", false, "list recent lookups instead of querying")
	pflag.Parse()

	baseURL := os.Getenv("WEATHER_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://wttr.in"
	}
	dbPath := os.Getenv("WEATHER_DB_PATH")
	if dbPath == "" {
		dbPath = "weather.db"
	}

	history, err := weather.OpenHistory(dbPath)
	if err != nil {
		log.Fatalf("history init error: %v", err)
	}
	defer history.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := history.Init(ctx); err != nil {
		log.Fatalf("history schema error: %v", err)
	}

	if *showHistory {
		lookups, err := history.Recent(ctx, *limit)
		if err != nil {
			log.Fatalf("history read error: %v", err)
		}
		for _, lookup := range lookups {
			fmt.Printf("%s  %-20s %3d°C  %s\n", lookup.At.Format("2006-01-02 15:04"), lookup.City, lookup.TempC, lookup.Condition)
		}
		return
	}

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: weather [-f text|json] CITY")
		os.Exit(2)
	}
	city := pflag.Arg(0)

	client := weather.NewClient(baseURL, nil)
	report, err := client.Current(ctx, city)
	if err != nil {
		log.Fatalf("lookup error: %v", err)
	}

	if err := history.Save(ctx, report); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record lookup: %v\n", err)
	}

	switch *format {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("encode error: %v", err)
		}
		fmt.Println(string(out))
	default:
		fmt.Printf("%s: %d°C (feels like %d°C), %s, wind %d km/h, humidity %d%%\n",
			report.City, report.TempC, report.FeelsLikeC, report.Condition, report.WindKmph, report.HumidityPct)
	}
}
