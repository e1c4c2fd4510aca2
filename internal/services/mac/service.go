package mac

import (
	"go.uber.org/zap"

	"enclavecrypt/internal/cryptoctx"
	"enclavecrypt/internal/domain"
	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
	"enclavecrypt/internal/transfer"
)

const opCMAC = "cmac"

// Service wraps the engine's CMAC call.
type Service struct {
	engine   native.Engine
	contexts *cryptoctx.Manager
	log      *zap.Logger
}

// New returns a MAC service.
func New(engine native.Engine, contexts *cryptoctx.Manager, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{engine: engine, contexts: contexts, log: log.Named("mac")}
}

// Compute returns the CMAC of data under key.
//
// The CMAC call takes no handle, but a context is still held for its
// duration, matching the engine's calling convention for this primitive.
func (s *Service) Compute(data []byte, key domain.MACKey) (domain.MAC, error) {
	s.log.Debug("cmac", zap.Int("data_len", len(data)))

	var a transfer.Arena
	defer a.Release()
	msg, n, err := a.Data(opCMAC, data)
	if err != nil {
		return domain.MAC{}, err
	}
	k, mac := a.MACKey(key), a.Out16()

	err = s.contexts.Do(opCMAC, func(native.Handle) error {
		return status.Operation(opCMAC, s.engine.CMAC(k, msg, n, mac))
	})
	if err != nil {
		return domain.MAC{}, err
	}
	return domain.MAC(*mac), nil
}

// Compile-time assertion that Service implements domain.MACService.
var _ domain.MACService = (*Service)(nil)
