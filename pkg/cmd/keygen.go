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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/consensys/go-polymac/pkg/polymac"
	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "generate a fresh 32-byte key.",
	Long: `Generate a fresh 32-byte key from the operating system's entropy source.
The key is printed as hex, or written raw to --out. Keys must never be reused
across messages by more than one sender.`,
	Run: func(cmd *cobra.Command, args []string) {
		var key [polymac.KeySize]byte
		//
		if _, err := rand.Read(key[:]); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if out := GetString(cmd, "out"); out != "" {
			if err := os.WriteFile(out, key[:], 0600); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		} else {
			fmt.Println(hex.EncodeToString(key[:]))
		}
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().String("out", "", "write the raw key bytes to this file")
}
