package handshake

import (
	"bytes"
	"errors"
	"fmt"

	"enclavecrypt/internal/domain"
	"enclavecrypt/internal/util/memzero"
)

var (
	ErrPeerSignature = errors.New("handshake: peer signature does not verify")
	ErrUnknownPeer   = errors.New("handshake: unexpected peer identity")
	ErrNoHello       = errors.New("handshake: Hello has not been sent")
	ErrHelloSent     = errors.New("handshake: Hello already sent")
	ErrCompleted     = errors.New("handshake: already completed")
)

// Labels passed to the key-derivation service, in SessionKeys field order.
var (
	LabelSMK = []byte("SMK")
	LabelSK  = []byte("SK")
	LabelMK  = []byte("MK")
	LabelVK  = []byte("VK")
)

// Services bundles the primitives a Party uses.
type Services struct {
	KeyExchange domain.KeyExchangeService
	Derivation  domain.KeyDerivationService
	Signature   domain.SignatureService
	MAC         domain.MACService
}

// Hello is the public message each party sends.
type Hello struct {
	Identity  domain.PublicKey
	Ephemeral domain.PublicKey
	Signature domain.Signature
}

// SessionKeys are the keys derived from the handshake secret.
type SessionKeys struct {
	SMK domain.DerivedKey // session MAC key, used by Confirm
	SK  domain.DerivedKey
	MK  domain.DerivedKey
	VK  domain.DerivedKey
}

// Wipe zeroes all keys.
func (k *SessionKeys) Wipe() {
	memzero.ZeroAll(k.SMK[:], k.SK[:], k.MK[:], k.VK[:])
}

// Party is one side of a handshake.
type Party struct {
	svc          Services
	identityPriv domain.PrivateKey
	identityPub  domain.PublicKey

	ephPriv   domain.PrivateKey
	sent      bool
	completed bool
}

// New returns a party with the given long-term identity.
func New(svc Services, identityPriv domain.PrivateKey, identityPub domain.PublicKey) *Party {
	return &Party{svc: svc, identityPriv: identityPriv, identityPub: identityPub}
}

// Hello generates the ephemeral key pair and returns the signed Hello.
func (p *Party) Hello() (Hello, error) {
	if p.sent {
		return Hello{}, ErrHelloSent
	}
	priv, pub, err := p.svc.KeyExchange.GenerateKeyPair()
	if err != nil {
		return Hello{}, fmt.Errorf("ephemeral key: %w", err)
	}
	sig, err := p.svc.Signature.Sign(pub.Slice(), p.identityPriv)
	if err != nil {
		memzero.Zero(priv[:])
		return Hello{}, fmt.Errorf("sign ephemeral: %w", err)
	}
	p.ephPriv = priv
	p.sent = true
	return Hello{Identity: p.identityPub, Ephemeral: pub, Signature: sig}, nil
}

// Complete authenticates peer against trusted and derives the session keys.
func (p *Party) Complete(peer Hello, trusted domain.PublicKey) (SessionKeys, error) {
	switch {
	case !p.sent:
		return SessionKeys{}, ErrNoHello
	case p.completed:
		return SessionKeys{}, ErrCompleted
	}
	if peer.Identity != trusted {
		return SessionKeys{}, ErrUnknownPeer
	}
	ok, err := p.svc.Signature.Verify(peer.Ephemeral.Slice(), peer.Signature, peer.Identity)
	if err != nil {
		return SessionKeys{}, fmt.Errorf("verify peer: %w", err)
	}
	if !ok {
		return SessionKeys{}, ErrPeerSignature
	}

	secret, err := p.svc.KeyExchange.ComputeSharedSecret(p.ephPriv, peer.Ephemeral)
	if err != nil {
		return SessionKeys{}, fmt.Errorf("shared secret: %w", err)
	}
	defer memzero.Zero(secret[:])
	p.completed = true
	memzero.Zero(p.ephPriv[:])

	var keys SessionKeys
	for _, d := range []struct {
		label []byte
		out   *domain.DerivedKey
	}{
		{LabelSMK, &keys.SMK},
		{LabelSK, &keys.SK},
		{LabelMK, &keys.MK},
		{LabelVK, &keys.VK},
	} {
		k, err := p.svc.Derivation.Derive(secret, d.label)
		if err != nil {
			keys.Wipe()
			return SessionKeys{}, fmt.Errorf("derive %s: %w", d.label, err)
		}
		*d.out = k
	}
	return keys, nil
}

// Confirm returns a key-confirmation tag over both Hellos under SMK. The
// Hellos are ordered by ephemeral key, so both sides get the same tag
// regardless of argument order.
func Confirm(mac domain.MACService, keys SessionKeys, a, b Hello) (domain.MAC, error) {
	if bytes.Compare(a.Ephemeral[:], b.Ephemeral[:]) > 0 {
		a, b = b, a
	}
	transcript := make([]byte, 0, 4*len(a.Ephemeral))
	transcript = append(transcript, a.Identity[:]...)
	transcript = append(transcript, a.Ephemeral[:]...)
	transcript = append(transcript, b.Identity[:]...)
	transcript = append(transcript, b.Ephemeral[:]...)
	return mac.Compute(transcript, keys.SMK.MACKey())
}
