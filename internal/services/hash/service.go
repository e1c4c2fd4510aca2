package hash

import (
	"go.uber.org/zap"

	"enclavecrypt/internal/domain"
	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
	"enclavecrypt/internal/transfer"
)

const opSHA256 = "sha256"

// Service wraps the engine's SHA-256 call.
type Service struct {
	engine native.Engine
	log    *zap.Logger
}

// New returns a hash service.
func New(engine native.Engine, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{engine: engine, log: log.Named("hash")}
}

// Compute returns SHA-256(data). Empty input is allowed.
func (s *Service) Compute(data []byte) (domain.Digest, error) {
	s.log.Debug("sha256", zap.Int("data_len", len(data)))

	var a transfer.Arena
	defer a.Release()
	msg, n, err := a.Data(opSHA256, data)
	if err != nil {
		return domain.Digest{}, err
	}
	digest := a.Out32()

	if err := status.Operation(opSHA256, s.engine.SHA256(msg, n, digest)); err != nil {
		return domain.Digest{}, err
	}
	return domain.Digest(*digest), nil
}

// Compile-time assertion that Service implements domain.HashService.
var _ domain.HashService = (*Service)(nil)
