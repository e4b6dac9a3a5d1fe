package main

import (
	"context"
	"log"
	"os"

	"github.com/sqlbundle/sqlbundle/pkg/cmd"
)

// NB: These are set by GoReleaser during a build.
var version = "dev"

func main() {
	if err := cmd.Run(context.Background(), version, os.Args); err != nil {
		log.Fatal(err)
	}
}
