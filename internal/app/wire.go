package app

import (
	"go.uber.org/zap"

	"enclavecrypt/internal/cryptoctx"
	"enclavecrypt/internal/logging"
	"enclavecrypt/internal/native"
	"enclavecrypt/internal/protocol/handshake"
	"enclavecrypt/internal/services/hash"
	"enclavecrypt/internal/services/keyderivation"
	"enclavecrypt/internal/services/keyexchange"
	"enclavecrypt/internal/services/mac"
	"enclavecrypt/internal/services/signature"
)

// Wire bundles the engine, logger and services for the CLI.
type Wire struct {
	Engine   native.Engine
	Log      *zap.Logger
	Contexts *cryptoctx.Manager

	KeyExchange *keyexchange.Service
	Derivation  *keyderivation.Service
	Signature   *signature.Service
	MAC         *mac.Service
	Hash        *hash.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	engine, err := OpenEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	return newWire(engine, log), nil
}

func newWire(engine native.Engine, log *zap.Logger) *Wire {
	contexts := cryptoctx.NewManager(engine, log)
	return &Wire{
		Engine:      engine,
		Log:         log,
		Contexts:    contexts,
		KeyExchange: keyexchange.New(engine, contexts, log),
		Derivation:  keyderivation.New(engine, log),
		Signature:   signature.New(engine, contexts, log),
		MAC:         mac.New(engine, contexts, log),
		Hash:        hash.New(engine, log),
	}
}

// Handshake returns the service set a handshake.Party needs.
func (w *Wire) Handshake() handshake.Services {
	return handshake.Services{
		KeyExchange: w.KeyExchange,
		Derivation:  w.Derivation,
		Signature:   w.Signature,
		MAC:         w.MAC,
	}
}

// Close flushes buffered log entries.
func (w *Wire) Close() error {
	return w.Log.Sync()
}
