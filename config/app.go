package config

type App struct {
	Port         string `env:"APP_PORT" default:"8080"`
	BooksFeedURL string `env:"BOOKS_FEED_URL"`
	LoansFeedURL string `env:"LOANS_FEED_URL"`
	BooksFeedID  string `env:"BOOKS_FEED_ID"`
	LoansFeedID  string `env:"LOANS_FEED_ID"`
	FetchTimeout int    `env:"FETCH_TIMEOUT_SEC" default:"15"`
	Env          string `env:"APP_ENV" default:"dev"`
}
