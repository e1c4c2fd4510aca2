package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"enclavecrypt/internal/app"
	"enclavecrypt/internal/protocol/handshake"
)

var errConfirmMismatch = errors.New("handshake: confirmation tags differ")

func handshakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handshake",
		Short: "Run a signed ephemeral key exchange between two in-process parties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHandshake(appCtx, cmd.OutOrStdout())
		},
	}
}

// runHandshake plays both sides and reports the confirmation tag. It writes
// nothing but the final summary, so w may be io.Discard.
func runHandshake(wire *app.Wire, w io.Writer) error {
	svc := wire.Handshake()

	newParty := func() (*handshake.Party, error) {
		priv, pub, err := svc.KeyExchange.GenerateKeyPair()
		if err != nil {
			return nil, err
		}
		return handshake.New(svc, priv, pub), nil
	}
	alice, err := newParty()
	if err != nil {
		return fmt.Errorf("alice identity: %w", err)
	}
	bob, err := newParty()
	if err != nil {
		return fmt.Errorf("bob identity: %w", err)
	}

	aHello, err := alice.Hello()
	if err != nil {
		return fmt.Errorf("alice hello: %w", err)
	}
	bHello, err := bob.Hello()
	if err != nil {
		return fmt.Errorf("bob hello: %w", err)
	}

	aKeys, err := alice.Complete(bHello, bHello.Identity)
	if err != nil {
		return fmt.Errorf("alice complete: %w", err)
	}
	defer aKeys.Wipe()
	bKeys, err := bob.Complete(aHello, aHello.Identity)
	if err != nil {
		return fmt.Errorf("bob complete: %w", err)
	}
	defer bKeys.Wipe()

	aTag, err := handshake.Confirm(svc.MAC, aKeys, aHello, bHello)
	if err != nil {
		return err
	}
	bTag, err := handshake.Confirm(svc.MAC, bKeys, bHello, aHello)
	if err != nil {
		return err
	}
	if aTag != bTag {
		return errConfirmMismatch
	}

	aFP, err := fingerprint(wire.Hash, aHello.Identity)
	if err != nil {
		return err
	}
	bFP, err := fingerprint(wire.Hash, bHello.Identity)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "alice:   %s\n", aFP)
	fmt.Fprintf(w, "bob:     %s\n", bFP)
	fmt.Fprintf(w, "confirm: %s\n", aTag.Hex())
	return nil
}
