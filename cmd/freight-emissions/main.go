package main

import (
	"fmt"
	"os"

	"freight-emissions/internal/cli"
)

var version = "dev"

// @title Freight Emissions API
// @version 1.0
// @description Computes greenhouse-gas emissions of a freight shipment and its share of container repositioning.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
