package commands

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"enclavecrypt/internal/domain"
)

var errBadSignature = errors.New("signature does not verify")

func signCmd() *cobra.Command {
	var (
		privHex string
		der     bool
		msg     message
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "ECDSA-P256 sign a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := domain.PrivateKeyFromHex(privHex)
			if err != nil {
				return err
			}
			data, err := msg.read(cmd)
			if err != nil {
				return err
			}
			sig, err := appCtx.Signature.Sign(data, priv)
			if err != nil {
				return err
			}
			if der {
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sig.ASN1()))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), sig.Hex())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&privHex, "priv", "", "private key (hex)")
	cmd.Flags().BoolVar(&der, "der", false, "print the signature as ASN.1 DER instead of r||s")
	_ = cmd.MarkFlagRequired("priv")
	msg.register(cmd)
	return cmd
}

func verifyCmd() *cobra.Command {
	var (
		pubHex, sigHex string
		der            bool
		msg            message
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an ECDSA-P256 signature",
		Long:  "Verify an ECDSA-P256 signature. Exits non-zero when the signature does not verify.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := domain.PublicKeyFromHex(pubHex)
			if err != nil {
				return err
			}
			sig, err := parseSignature(sigHex, der)
			if err != nil {
				return err
			}
			data, err := msg.read(cmd)
			if err != nil {
				return err
			}
			ok, err := appCtx.Signature.Verify(data, sig, pub)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errBadSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubHex, "pub", "", "signer public key (hex)")
	cmd.Flags().StringVar(&sigHex, "sig", "", "signature (hex)")
	cmd.Flags().BoolVar(&der, "der", false, "signature is ASN.1 DER instead of r||s")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")
	msg.register(cmd)
	return cmd
}

func parseSignature(s string, der bool) (domain.Signature, error) {
	if !der {
		return domain.SignatureFromHex(s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return domain.Signature{}, fmt.Errorf("signature: %w", err)
	}
	return domain.ParseASN1Signature(b)
}
