// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/spf13/cobra"
)

func functionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the governed functions with their signatures and selectors",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FUNCTION\tSELECTOR\tSIGNATURE")
			for _, f := range govfunc.Funcs() {
				fmt.Fprintf(
					w,
					"%s\t%s\t%s\n",
					f.Name(),
					f.Selector(),
					f.Signature(),
				)
			}
			w.Flush()
		},
	}
}
