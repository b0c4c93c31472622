package cmd

// Config carries every environment setting the application reads. Values
// arrive as strings straight from the environment; consumers parse and
// fall back to defaults where a setting is optional.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	QuoteTimeoutMs string
	AgentCount     string
	AgentFeedSeed  string
}
