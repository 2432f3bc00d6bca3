// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/consensys/go-polymac/pkg/polymac"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] [file]",
	Short: "verify the authentication tag of a file (or stdin).",
	Long: `Recompute the tag of the given file, or of standard input when no file is
given, and compare it against --tag. Exits with status 1 when the tag does
not match; a mismatch means the message must be rejected, not retried.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		key := readKey(cmd)
		expected := readTag(GetString(cmd, "tag"))
		msg, name := readMessage(args)
		//
		if polymac.Verify(key, msg, expected) {
			color.Green("%s: OK", name)
		} else {
			color.Red("%s: FAILED", name)
			os.Exit(1)
		}
	},
}

// readTag decodes the expected tag from 32 hex digits.
func readTag(s string) [polymac.TagSize]byte {
	var tag [polymac.TagSize]byte
	//
	raw, err := hex.DecodeString(s)
	if err != nil {
		fmt.Printf("malformed tag: %s\n", err)
		os.Exit(2)
	}
	//
	if len(raw) != polymac.TagSize {
		fmt.Printf("tag is %d bytes, want %d\n", len(raw), polymac.TagSize)
		os.Exit(2)
	}
	//
	copy(tag[:], raw)
	//
	return tag
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().String("key", "", "shared key as 64 hex digits")
	verifyCmd.Flags().String("key-file", "", "file holding the 32-byte shared key")
	verifyCmd.Flags().String("tag", "", "expected tag as 32 hex digits")
	verifyCmd.MarkFlagRequired("tag")
}
