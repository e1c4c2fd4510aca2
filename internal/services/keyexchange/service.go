package keyexchange

import (
	"go.uber.org/zap"

	"enclavecrypt/internal/cryptoctx"
	"enclavecrypt/internal/domain"
	"enclavecrypt/internal/native"
	"enclavecrypt/internal/status"
	"enclavecrypt/internal/transfer"
)

const (
	opCreateKeyPair    = "create_key_pair"
	opComputeSharedKey = "compute_shared_key"
)

// Service wraps the engine's key-pair and DH calls.
type Service struct {
	engine   native.Engine
	contexts *cryptoctx.Manager
	log      *zap.Logger
}

// New returns a key-exchange service.
func New(engine native.Engine, contexts *cryptoctx.Manager, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{engine: engine, contexts: contexts, log: log.Named("keyexchange")}
}

// GenerateKeyPair creates a fresh P-256 key pair.
func (s *Service) GenerateKeyPair() (domain.PrivateKey, domain.PublicKey, error) {
	s.log.Debug("generate key pair")

	var a transfer.Arena
	defer a.Release()
	priv, pub := a.Out32(), a.Out64()

	err := s.contexts.Do(opCreateKeyPair, func(h native.Handle) error {
		return status.Operation(opCreateKeyPair, s.engine.CreateKeyPair(priv, pub, h))
	})
	if err != nil {
		return domain.PrivateKey{}, domain.PublicKey{}, err
	}
	return domain.PrivateKey(*priv), domain.PublicKey(*pub), nil
}

// ComputeSharedSecret computes DH(privateKey, peerPublicKey).
func (s *Service) ComputeSharedSecret(
	privateKey domain.PrivateKey,
	peerPublicKey domain.PublicKey,
) (domain.SharedSecret, error) {
	s.log.Debug("compute shared secret")

	var a transfer.Arena
	defer a.Release()
	priv, peer, shared := a.PrivateKey(privateKey), a.PublicKey(peerPublicKey), a.Out32()

	err := s.contexts.Do(opComputeSharedKey, func(h native.Handle) error {
		return status.Operation(opComputeSharedKey, s.engine.ComputeSharedKey(priv, peer, shared, h))
	})
	if err != nil {
		return domain.SharedSecret{}, err
	}
	return domain.SharedSecret(*shared), nil
}

// Ephemeral generates a key pair and computes its DH secret with
// peerPublicKey, both under one context.
func (s *Service) Ephemeral(peerPublicKey domain.PublicKey) (
	domain.PrivateKey,
	domain.PublicKey,
	domain.SharedSecret,
	error,
) {
	s.log.Debug("ephemeral exchange")

	var a transfer.Arena
	defer a.Release()
	priv, pub := a.Out32(), a.Out64()
	peer, shared := a.PublicKey(peerPublicKey), a.Out32()

	err := s.contexts.Do("ephemeral", func(h native.Handle) error {
		if err := status.Operation(opCreateKeyPair, s.engine.CreateKeyPair(priv, pub, h)); err != nil {
			return err
		}
		return status.Operation(opComputeSharedKey, s.engine.ComputeSharedKey(priv, peer, shared, h))
	})
	if err != nil {
		return domain.PrivateKey{}, domain.PublicKey{}, domain.SharedSecret{}, err
	}
	return domain.PrivateKey(*priv), domain.PublicKey(*pub), domain.SharedSecret(*shared), nil
}

// Compile-time assertion that Service implements domain.KeyExchangeService.
var _ domain.KeyExchangeService = (*Service)(nil)
