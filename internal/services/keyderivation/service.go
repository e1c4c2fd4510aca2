package keyderivation

import (
	"go.uber.org/zap"

	"enclavecrypt/internal/domain"
	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
	"enclavecrypt/internal/transfer"
)

const opDeriveKey = "derive_key"

// Service wraps the engine's derive_key call. It needs no context.
type Service struct {
	engine native.Engine
	log    *zap.Logger
}

// New returns a key-derivation service.
func New(engine native.Engine, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{engine: engine, log: log.Named("keyderivation")}
}

// Derive returns the key for (masterSecret, label).
func (s *Service) Derive(masterSecret domain.SharedSecret, label []byte) (domain.DerivedKey, error) {
	s.log.Debug("derive key", zap.Int("label_len", len(label)))

	var a transfer.Arena
	defer a.Release()
	secret := a.SharedSecret(masterSecret)
	lbl, n, err := a.Data(opDeriveKey, label)
	if err != nil {
		return domain.DerivedKey{}, err
	}
	out := a.Out16()

	if err := status.Operation(opDeriveKey, s.engine.DeriveKey(secret, lbl, n, out)); err != nil {
		return domain.DerivedKey{}, err
	}
	return domain.DerivedKey(*out), nil
}

// Compile-time assertion that Service implements domain.KeyDerivationService.
var _ domain.KeyDerivationService = (*Service)(nil)
