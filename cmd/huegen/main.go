// Huegen - a colour palette generator
//
// Huegen derives harmony palettes from a base colour, checks them against
// WCAG contrast thresholds and exports them for use in stylesheets.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/huegen/internal/cli"
)

func main() {
	cli.Execute()
}
