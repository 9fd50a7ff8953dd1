package main

import (
	"embed"
	"os"

	"github.com/tshehlatshego/checkmate/internal/cli"
)

//go:embed static
var staticFS embed.FS

func main() {
	if err := cli.Execute(staticFS); err != nil {
		os.Exit(1)
	}
}
