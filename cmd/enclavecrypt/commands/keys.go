package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"enclavecrypt/internal/domain"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a P-256 key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, pub, err := appCtx.KeyExchange.GenerateKeyPair()
			if err != nil {
				return err
			}
			fp, err := fingerprint(appCtx.Hash, pub)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "private:     %s\n", hex.EncodeToString(priv[:]))
			fmt.Fprintf(out, "public:      %s\n", pub.Hex())
			fmt.Fprintf(out, "fingerprint: %s\n", fp)
			return nil
		},
	}
}

func sharedCmd() *cobra.Command {
	var privHex, peerHex string
	cmd := &cobra.Command{
		Use:   "shared",
		Short: "Compute the DH shared secret of a private key and a peer public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := domain.PrivateKeyFromHex(privHex)
			if err != nil {
				return err
			}
			peer, err := domain.PublicKeyFromHex(peerHex)
			if err != nil {
				return err
			}
			secret, err := appCtx.KeyExchange.ComputeSharedSecret(priv, peer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(secret[:]))
			return nil
		},
	}
	cmd.Flags().StringVar(&privHex, "priv", "", "private key (hex)")
	cmd.Flags().StringVar(&peerHex, "peer", "", "peer public key (hex)")
	_ = cmd.MarkFlagRequired("priv")
	_ = cmd.MarkFlagRequired("peer")
	return cmd
}

func deriveCmd() *cobra.Command {
	var secretHex, label string
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a 128-bit key from a shared secret and a label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := domain.SharedSecretFromHex(secretHex)
			if err != nil {
				return err
			}
			key, err := appCtx.Derivation.Derive(secret, []byte(label))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key[:]))
			return nil
		},
	}
	cmd.Flags().StringVar(&secretHex, "secret", "", "shared secret (hex)")
	cmd.Flags().StringVar(&label, "label", "", "derivation label, e.g. SMK")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("label")
	return cmd
}
