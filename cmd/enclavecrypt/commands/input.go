package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// message holds the --data / --in flags shared by commands that take a message.
type message struct {
	data string
	in   string
}

func (m *message) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&m.data, "data", "", "message text")
	cmd.Flags().StringVar(&m.in, "in", "", "read the message from this file ('-' for stdin)")
	cmd.MarkFlagsMutuallyExclusive("data", "in")
}

// read returns the message, falling back to stdin when neither flag is set.
func (m *message) read(cmd *cobra.Command) ([]byte, error) {
	switch {
	case cmd.Flags().Changed("data"):
		return []byte(m.data), nil
	case m.in != "" && m.in != "-":
		return os.ReadFile(m.in)
	default:
		return io.ReadAll(cmd.InOrStdin())
	}
}
