package main

import (
	"os"

	"github.com/es-debug/webstats/internal/application/webstats"
)

func main() {
	os.Exit(webstats.Execute())
}
