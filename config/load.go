package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// driveExportURL turns a spreadsheet export file id into its download link.
const driveExportURL = "https://drive.google.com/uc?export=download&id=%s"

func Load() App {
	cfg := App{
		Port:         getenv("APP_PORT", "8080"),
		BooksFeedURL: os.Getenv("BOOKS_FEED_URL"),
		LoansFeedURL: os.Getenv("LOANS_FEED_URL"),
		BooksFeedID:  os.Getenv("BOOKS_FEED_ID"),
		LoansFeedID:  os.Getenv("LOANS_FEED_ID"),
		FetchTimeout: getenvInt("FETCH_TIMEOUT_SEC", 15),
		Env:          getenv("APP_ENV", "dev"),
	}
	if cfg.BooksFeedURL == "" {
		cfg.BooksFeedURL = fmt.Sprintf(driveExportURL, must("BOOKS_FEED_ID"))
	}
	if cfg.LoansFeedURL == "" {
		cfg.LoansFeedURL = fmt.Sprintf(driveExportURL, must("LOANS_FEED_ID"))
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("bad int env, using default", "key", k, "value", v)
		return def
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
