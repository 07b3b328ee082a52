package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Documenso e-signature integration. An empty API key is a supported
	// mode, not a misconfiguration: the server selects the mock provider
	// and never performs network calls.
	DocumensoAPIKey  string `envconfig:"DOCUMENSO_API_KEY"`
	DocumensoBaseURL string `envconfig:"DOCUMENSO_BASE_URL" default:"https://app.documenso.com"`
}
