package main

import (
	"os"

	"github.com/ytget/android-template-generator/internal/cli"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Dependencies{Version: version}))
}
