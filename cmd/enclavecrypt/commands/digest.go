package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"enclavecrypt/internal/domain"
)

func cmacCmd() *cobra.Command {
	var (
		keyHex string
		msg    message
	)
	cmd := &cobra.Command{
		Use:   "cmac",
		Short: "Compute the AES-128-CMAC of a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.MACKeyFromHex(keyHex)
			if err != nil {
				return err
			}
			data, err := msg.read(cmd)
			if err != nil {
				return err
			}
			tag, err := appCtx.MAC.Compute(data, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "128-bit key (hex)")
	_ = cmd.MarkFlagRequired("key")
	msg.register(cmd)
	return cmd
}

func sha256Cmd() *cobra.Command {
	var msg message
	cmd := &cobra.Command{
		Use:   "sha256",
		Short: "Compute the SHA-256 digest of a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := msg.read(cmd)
			if err != nil {
				return err
			}
			d, err := appCtx.Hash.Compute(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Hex())
			return nil
		},
	}
	msg.register(cmd)
	return cmd
}
