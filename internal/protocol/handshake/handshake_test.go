package handshake_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"enclavecrypt/internal/cryptoctx"
	"enclavecrypt/internal/domain"
	"enclavecrypt/internal/native/soft"
	"enclavecrypt/internal/protocol/handshake"
	"enclavecrypt/internal/services/keyderivation"
	"enclavecrypt/internal/services/keyexchange"
	"enclavecrypt/internal/services/mac"
	"enclavecrypt/internal/services/signature"
)

func services(t *testing.T) (handshake.Services, *soft.Engine) {
	t.Helper()
	engine := soft.New()
	log := zap.NewNop()
	ctx := cryptoctx.NewManager(engine, log)
	return handshake.Services{
		KeyExchange: keyexchange.New(engine, ctx, log),
		Derivation:  keyderivation.New(engine, log),
		Signature:   signature.New(engine, ctx, log),
		MAC:         mac.New(engine, ctx, log),
	}, engine
}

// makeParty creates a party with a fresh identity key pair.
func makeParty(t *testing.T, svc handshake.Services) (*handshake.Party, domain.PublicKey) {
	t.Helper()
	priv, pub, err := svc.KeyExchange.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	return handshake.New(svc, priv, pub), pub
}

func TestHandshake_BothSidesAgree(t *testing.T) {
	svc, engine := services(t)
	alice, aliceID := makeParty(t, svc)
	bob, bobID := makeParty(t, svc)

	aliceHello, err := alice.Hello()
	if err != nil {
		t.Fatalf("alice Hello: %v", err)
	}
	bobHello, err := bob.Hello()
	if err != nil {
		t.Fatalf("bob Hello: %v", err)
	}

	aliceKeys, err := alice.Complete(bobHello, bobID)
	if err != nil {
		t.Fatalf("alice Complete: %v", err)
	}
	bobKeys, err := bob.Complete(aliceHello, aliceID)
	if err != nil {
		t.Fatalf("bob Complete: %v", err)
	}
	if aliceKeys != bobKeys {
		t.Fatal("session keys differ")
	}
	if aliceKeys.SMK == aliceKeys.SK || aliceKeys.SK == aliceKeys.MK || aliceKeys.MK == aliceKeys.VK {
		t.Fatal("labels produced identical keys")
	}

	aliceTag, err := handshake.Confirm(svc.MAC, aliceKeys, aliceHello, bobHello)
	if err != nil {
		t.Fatalf("alice Confirm: %v", err)
	}
	bobTag, err := handshake.Confirm(svc.MAC, bobKeys, bobHello, aliceHello)
	if err != nil {
		t.Fatalf("bob Confirm: %v", err)
	}
	if aliceTag != bobTag {
		t.Fatal("confirmation tags differ")
	}
	if n := engine.OpenContexts(); n != 0 {
		t.Fatalf("want no open contexts, got %d", n)
	}
}

func TestHandshake_TamperedEphemeralRejected(t *testing.T) {
	svc, _ := services(t)
	alice, _ := makeParty(t, svc)
	bob, bobID := makeParty(t, svc)

	if _, err := alice.Hello(); err != nil {
		t.Fatalf("alice Hello: %v", err)
	}
	bobHello, err := bob.Hello()
	if err != nil {
		t.Fatalf("bob Hello: %v", err)
	}

	_, mallory, err := svc.KeyExchange.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	bobHello.Ephemeral = mallory

	if _, err := alice.Complete(bobHello, bobID); !errors.Is(err, handshake.ErrPeerSignature) {
		t.Fatalf("want ErrPeerSignature, got %v", err)
	}
}

func TestHandshake_UnknownPeerRejected(t *testing.T) {
	svc, _ := services(t)
	alice, _ := makeParty(t, svc)
	bob, _ := makeParty(t, svc)
	_, stranger := makeParty(t, svc)

	if _, err := alice.Hello(); err != nil {
		t.Fatalf("alice Hello: %v", err)
	}
	bobHello, err := bob.Hello()
	if err != nil {
		t.Fatalf("bob Hello: %v", err)
	}
	if _, err := alice.Complete(bobHello, stranger); !errors.Is(err, handshake.ErrUnknownPeer) {
		t.Fatalf("want ErrUnknownPeer, got %v", err)
	}
}

func TestHandshake_OrderingErrors(t *testing.T) {
	svc, _ := services(t)
	alice, _ := makeParty(t, svc)
	bob, bobID := makeParty(t, svc)

	if _, err := alice.Complete(handshake.Hello{}, bobID); !errors.Is(err, handshake.ErrNoHello) {
		t.Fatalf("want ErrNoHello, got %v", err)
	}
	if _, err := alice.Hello(); err != nil {
		t.Fatalf("alice Hello: %v", err)
	}
	if _, err := alice.Hello(); !errors.Is(err, handshake.ErrHelloSent) {
		t.Fatalf("want ErrHelloSent, got %v", err)
	}

	bobHello, err := bob.Hello()
	if err != nil {
		t.Fatalf("bob Hello: %v", err)
	}
	if _, err := alice.Complete(bobHello, bobID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, err := alice.Complete(bobHello, bobID); !errors.Is(err, handshake.ErrCompleted) {
		t.Fatalf("want ErrCompleted, got %v", err)
	}
}
