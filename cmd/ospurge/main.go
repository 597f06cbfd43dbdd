// Package main is the entry point for the ospurge CLI.
//
// ospurge deletes every resource of an OpenStack project (servers, volumes,
// snapshots, images, ports, networks, subnets, routers, security groups,
// floating IPs, keypairs and stacks) in dependency order, then deletes the
// project itself.
//
// Commands: purge, version, completion.
//
// For detailed usage information, run:
//
//	ospurge --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/ospurge/cmd/ospurge/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
