package main

import (
	"context"
	"flag"
	"os"

	platformcmd "github.com/louisbranch/glyphgen/internal/platform/cmd"
	"github.com/louisbranch/glyphgen/internal/platform/config"
	"github.com/louisbranch/glyphgen/internal/tools/glyphgen"
)

func main() {
	cfg, err := glyphgen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	err = platformcmd.RunWithTelemetry(context.Background(), platformcmd.ServiceGlyphGen, func(ctx context.Context) error {
		return glyphgen.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
