/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command schemadump parses a YAML schema file and prints the record
// definitions it declares, for verifying a schema before deployment.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/recordstore"
	"github.com/suparena/recordstore/schema"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := recordstore.GetVersionInfo()
		fmt.Printf("RecordStore schemadump version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: schemadump [flags] <schema.yaml>")
		os.Exit(2)
	}

	defs, err := schema.LoadYAMLFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "schemadump: %v\n", err)
		os.Exit(1)
	}

	for _, def := range defs {
		fmt.Printf("table %s\n", def.TableName())
		for _, attr := range def.Attributes() {
			line := fmt.Sprintf("  %s %s", attr.Name, attr.Type)
			if attr.StorageName != attr.Name {
				line += fmt.Sprintf(" storage=%s", attr.StorageName)
			}
			if attr.Role != schema.KeyNone {
				line += fmt.Sprintf(" key=%s", attr.Role)
			}
			fmt.Println(line)
		}
		fmt.Printf("  key attributes: %v\n", def.KeyNames())
	}
}
