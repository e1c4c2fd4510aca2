package app

import "enclavecrypt/internal/logging"

// Engine names accepted by Config.Engine.
const (
	EngineSoftware = "software"
	EngineSGX      = "sgx"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Engine string         // software or sgx; empty means software
	Log    logging.Config // diagnostics sink
}
