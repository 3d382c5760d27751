/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is a command line wallet driving Velocity Network credential exchanges: it
// resolves DIDs, parses deep links and fetches verified manifests, presentation requests and
// registry data.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/cmd/vnf-wallet/walletcmd"
)

var logger = log.New("vnf-wallet")
var Version string // will be embeded during build

func main() {
	rootCmd := &cobra.Command{
		Use:     "vnf-wallet",
		Version: Version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	walletcmd.AddCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run vnf-wallet", log.WithError(err))
	}
}
