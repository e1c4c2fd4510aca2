package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"enclavecrypt/internal/app"
	"enclavecrypt/internal/domain"
)

type check struct {
	name string
	run  func(w *app.Wire) error
}

// Known SHA-256 digests.
const (
	sha256Empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	sha256ABC   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

var checks = []check{
	{"dh-commutative", checkDH},
	{"sign-verify", checkSignVerify},
	{"verify-bitflip", checkBitFlip},
	{"sha256-vectors", checkSHA256},
	{"derive-session", checkDerive},
	{"cmac-deterministic", checkCMAC},
	{"handshake", func(w *app.Wire) error { return runHandshake(w, io.Discard) }},
}

func selftestCmd() *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Exercise every primitive against the selected engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if parallel < 1 {
				return fmt.Errorf("--parallel must be at least 1")
			}
			results := make([]error, len(checks))

			var g errgroup.Group
			g.SetLimit(parallel)
			for i, c := range checks {
				i, c := i, c
				g.Go(func() error {
					results[i] = c.run(appCtx)
					return nil
				})
			}
			_ = g.Wait()

			out := cmd.OutOrStdout()
			var failed []error
			for i, c := range checks {
				if err := results[i]; err != nil {
					fmt.Fprintf(out, "FAIL %s: %v\n", c.name, err)
					failed = append(failed, fmt.Errorf("%s: %w", c.name, err))
					continue
				}
				fmt.Fprintf(out, "ok   %s\n", c.name)
			}
			return errors.Join(failed...)
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 1, "number of checks to run concurrently")
	return cmd
}

func checkDH(w *app.Wire) error {
	privA, pubA, err := w.KeyExchange.GenerateKeyPair()
	if err != nil {
		return err
	}
	privB, pubB, err := w.KeyExchange.GenerateKeyPair()
	if err != nil {
		return err
	}
	ab, err := w.KeyExchange.ComputeSharedSecret(privA, pubB)
	if err != nil {
		return err
	}
	ba, err := w.KeyExchange.ComputeSharedSecret(privB, pubA)
	if err != nil {
		return err
	}
	if ab != ba {
		return errors.New("shared secrets differ")
	}
	return nil
}

func checkSignVerify(w *app.Wire) error {
	priv, pub, err := w.KeyExchange.GenerateKeyPair()
	if err != nil {
		return err
	}
	msg := []byte("hello")
	sig, err := w.Signature.Sign(msg, priv)
	if err != nil {
		return err
	}
	ok, err := w.Signature.Verify(msg, sig, pub)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("fresh signature rejected")
	}
	return nil
}

func checkBitFlip(w *app.Wire) error {
	priv, pub, err := w.KeyExchange.GenerateKeyPair()
	if err != nil {
		return err
	}
	msg := []byte("hello")
	sig, err := w.Signature.Sign(msg, priv)
	if err != nil {
		return err
	}
	tampered := []byte("hellp")
	ok, err := w.Signature.Verify(tampered, sig, pub)
	if err != nil {
		return err
	}
	if ok {
		return errors.New("signature accepted for altered message")
	}
	return nil
}

func checkSHA256(w *app.Wire) error {
	for in, want := range map[string]string{"": sha256Empty, "abc": sha256ABC} {
		d, err := w.Hash.Compute([]byte(in))
		if err != nil {
			return err
		}
		if got := d.Hex(); got != want {
			return fmt.Errorf("sha256(%q) = %s, want %s", in, got, want)
		}
	}
	return nil
}

func checkDerive(w *app.Wire) error {
	privA, pubA, err := w.KeyExchange.GenerateKeyPair()
	if err != nil {
		return err
	}
	privB, pubB, err := w.KeyExchange.GenerateKeyPair()
	if err != nil {
		return err
	}
	ab, err := w.KeyExchange.ComputeSharedSecret(privA, pubB)
	if err != nil {
		return err
	}
	ba, err := w.KeyExchange.ComputeSharedSecret(privB, pubA)
	if err != nil {
		return err
	}
	kA, err := w.Derivation.Derive(ab, []byte("session"))
	if err != nil {
		return err
	}
	kB, err := w.Derivation.Derive(ba, []byte("session"))
	if err != nil {
		return err
	}
	if kA != kB {
		return errors.New("derived keys differ")
	}
	return nil
}

func checkCMAC(w *app.Wire) error {
	var key domain.MACKey
	for i := range key {
		key[i] = byte(i)
	}
	msg := bytes.Repeat([]byte{0xa5}, 100)
	m1, err := w.MAC.Compute(msg, key)
	if err != nil {
		return err
	}
	m2, err := w.MAC.Compute(msg, key)
	if err != nil {
		return err
	}
	if m1 != m2 {
		return errors.New("MAC not deterministic")
	}
	return nil
}
