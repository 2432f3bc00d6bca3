package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-polymac/pkg/polymac"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or terminate with an error.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected flag, or terminate with an error.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetIntArray gets an expected flag, or terminate with an error.
func GetIntArray(cmd *cobra.Command, flag string) []int {
	r, err := cmd.Flags().GetIntSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readKey resolves the shared key from either --key (hex) or --key-file (32
// raw bytes), terminating with an error if neither or both are given.
func readKey(cmd *cobra.Command) *[polymac.KeySize]byte {
	hexKey := GetString(cmd, "key")
	keyFile := GetString(cmd, "key-file")
	//
	var raw []byte
	//
	switch {
	case hexKey != "" && keyFile != "":
		fmt.Println("--key and --key-file are mutually exclusive")
		os.Exit(2)
	case hexKey != "":
		var err error
		if raw, err = hex.DecodeString(hexKey); err != nil {
			fmt.Printf("malformed key: %s\n", err)
			os.Exit(2)
		}
	case keyFile != "":
		var err error
		if raw, err = os.ReadFile(keyFile); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	default:
		fmt.Println("a key is required (--key or --key-file)")
		os.Exit(2)
	}
	//
	if len(raw) != polymac.KeySize {
		fmt.Printf("key is %d bytes, want %d\n", len(raw), polymac.KeySize)
		os.Exit(2)
	}
	//
	key := new([polymac.KeySize]byte)
	copy(key[:], raw)
	//
	return key
}

// readMessage reads the message to authenticate from the (optional) file
// argument, falling back to stdin. Returns the bytes and a printable name
// for logging.
func readMessage(args []string) ([]byte, string) {
	if len(args) == 0 {
		msg, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		return msg, "(stdin)"
	}
	//
	msg, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return msg, args[0]
}
