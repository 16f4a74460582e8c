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
	"time"

	paramlock "github.com/blinklabs-io/paramlock"
	"github.com/blinklabs-io/paramlock/govfunc"
	"github.com/blinklabs-io/paramlock/internal/config"
	"github.com/spf13/cobra"
)

func maturityRun(cmd *cobra.Command, args []string, cfg *config.Config) error {
	logger := commonRun()
	ctx := cmd.Context()

	f, err := govfunc.Resolve(args[0])
	if err != nil {
		return err
	}
	words, err := parseArgs(f, args[1:])
	if err != nil {
		return err
	}

	client, err := paramlock.NewClient(
		ctx,
		paramlock.WithLogger(logger),
		paramlock.WithRPCEndpoint(cfg.RpcEndpoint),
		paramlock.WithVaultAddress(cfg.Vault()),
	)
	if err != nil {
		return fmt.Errorf("building client: %w", err)
	}

	maturity, err := client.Timelock().Maturity(ctx, f, words...)
	if err != nil {
		return fmt.Errorf("reading maturity for %s: %w", f.Name(), err)
	}
	if maturity == 0 {
		fmt.Printf("%s: no pending proposal\n", f.Name())
		return nil
	}
	fmt.Printf(
		"%s: executable at %s (unix %d)\n",
		f.Name(),
		time.Unix(int64(maturity), 0).UTC().Format(time.RFC3339),
		maturity,
	)
	return nil
}

func maturityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "maturity <function> [args...]",
		Short: "Show when a pending proposal for a governed function matures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if cfg == nil {
				return fmt.Errorf("no config found in context")
			}
			return maturityRun(cmd, args, cfg)
		},
	}
}
