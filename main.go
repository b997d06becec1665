package main

import (
	"log"
	"os"

	"github.com/FACorreiaa/uk-dental-implants/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Printf("implantsite: %v", err)
		os.Exit(1)
	}
}
