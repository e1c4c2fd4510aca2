package signature

import (
	"go.uber.org/zap"

	"enclavecrypt/internal/cryptoctx"
	"enclavecrypt/internal/domain"
	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
	"enclavecrypt/internal/transfer"
)

const (
	opSign   = "ecdsa_sign"
	opVerify = "ecdsa_verify"
)

// Service wraps the engine's ECDSA calls.
type Service struct {
	engine   native.Engine
	contexts *cryptoctx.Manager
	log      *zap.Logger
}

// New returns a signature service.
func New(engine native.Engine, contexts *cryptoctx.Manager, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{engine: engine, contexts: contexts, log: log.Named("signature")}
}

// Sign signs data with privateKey.
func (s *Service) Sign(data []byte, privateKey domain.PrivateKey) (domain.Signature, error) {
	s.log.Debug("sign", zap.Int("data_len", len(data)))

	var a transfer.Arena
	defer a.Release()
	msg, n, err := a.Data(opSign, data)
	if err != nil {
		return domain.Signature{}, err
	}
	priv, sig := a.PrivateKey(privateKey), a.Out64()

	err = s.contexts.Do(opSign, func(h native.Handle) error {
		return status.Operation(opSign, s.engine.ECDSASign(msg, n, priv, sig, h))
	})
	if err != nil {
		return domain.Signature{}, err
	}
	return domain.Signature(*sig), nil
}

// Verify reports whether signature is valid for data under publicKey.
func (s *Service) Verify(
	data []byte,
	signature domain.Signature,
	publicKey domain.PublicKey,
) (bool, error) {
	s.log.Debug("verify", zap.Int("data_len", len(data)))

	var a transfer.Arena
	defer a.Release()
	msg, n, err := a.Data(opVerify, data)
	if err != nil {
		return false, err
	}
	pub, sig := a.PublicKey(publicKey), a.Signature(signature)
	result := native.InvalidSignature

	err = s.contexts.Do(opVerify, func(h native.Handle) error {
		return status.Operation(opVerify, s.engine.ECDSAVerify(msg, n, pub, sig, &result, h))
	})
	if err != nil {
		return false, err
	}
	if result != native.Valid {
		s.log.Debug("signature rejected", zap.Uint8("result", uint8(result)))
		return false, nil
	}
	return true, nil
}

// Compile-time assertion that Service implements domain.SignatureService.
var _ domain.SignatureService = (*Service)(nil)
