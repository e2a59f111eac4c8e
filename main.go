// main.go
package main

import (
	"github.com/charmbracelet/log"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

func main() {
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}
