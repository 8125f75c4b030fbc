package main

import (
	"log"

	"github.com/gridkit/enermetrics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
