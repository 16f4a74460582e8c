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
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	paramlock "github.com/blinklabs-io/paramlock"
	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/internal/config"
	"github.com/spf13/cobra"
)

func statusRun(ctx context.Context, out io.Writer, client *paramlock.Client) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	// Flush whatever rows were rendered even if a later read fails
	defer w.Flush()
	fmt.Fprintln(w, "FUNCTION\tSELECTOR\tTIMELOCK")
	for _, f := range govfunc.Funcs() {
		duration, err := client.Timelock().Duration(ctx, f)
		if err != nil {
			return fmt.Errorf("reading timelock for %s: %w", f.Name(), err)
		}
		fmt.Fprintf(
			w,
			"%s\t%s\t%s\n",
			f.Name(),
			f.Selector(),
			time.Duration(duration)*time.Second,
		)
	}
	return nil
}

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current timelock duration for every governed function",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if cfg == nil {
				return fmt.Errorf("no config found in context")
			}
			logger := commonRun()
			ctx := cmd.Context()
			client, err := paramlock.NewClient(
				ctx,
				paramlock.WithLogger(logger),
				paramlock.WithRPCEndpoint(cfg.RpcEndpoint),
				paramlock.WithVaultAddress(cfg.Vault()),
			)
			if err != nil {
				return fmt.Errorf("building client: %w", err)
			}
			return statusRun(ctx, os.Stdout, client)
		},
	}
}
