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
	"time"

	"github.com/consensys/go-polymac/pkg/polymac"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tagCmd = &cobra.Command{
	Use:   "tag [flags] [file]",
	Short: "compute the authentication tag of a file (or stdin).",
	Long: `Compute the 16-byte authentication tag of the given file, or of standard
input when no file is given, under the shared key. The tag is printed as hex
unless --binary is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		key := readKey(cmd)
		msg, name := readMessage(args)
		//
		start := time.Now()
		tag := polymac.Sum(key, msg)
		log.Debugf("authenticated %s (%d bytes) in %s", name, len(msg), time.Since(start))
		//
		if GetFlag(cmd, "binary") {
			// Raw tag bytes would be mangled by a terminal; insist on a
			// pipe or redirection.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Println("refusing to write a binary tag to a terminal")
				os.Exit(2)
			}
			//
			os.Stdout.Write(tag[:])
		} else {
			fmt.Println(hex.EncodeToString(tag[:]))
		}
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.Flags().String("key", "", "shared key as 64 hex digits")
	tagCmd.Flags().String("key-file", "", "file holding the 32-byte shared key")
	tagCmd.Flags().Bool("binary", false, "write the raw 16 tag bytes instead of hex")
}
