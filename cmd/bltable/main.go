// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command bltable is a second demonstration binary, cobra-based in the
// spirit of the teacher's cmd/pedumper.go: it loads an Enums or
// Bitmasks table file (YAML or JSON, by extension) and pretty-prints
// its entries. It exercises the same collaborator-facing table
// loaders the rest of the module uses to back Enum/Bitmask Type
// rendering, without turning the module into a CLI product.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saferwall/bytelayout/table"
	"github.com/spf13/cobra"
)

func readTableFile(path string) ([]byte, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	isYAML := strings.EqualFold(filepath.Ext(path), ".yaml") || strings.EqualFold(filepath.Ext(path), ".yml")
	return raw, isYAML, nil
}

func showEnums(cmd *cobra.Command, args []string) error {
	raw, isYAML, err := readTableFile(args[0])
	if err != nil {
		return err
	}
	var e *table.Enums
	if isYAML {
		e, err = table.LoadEnumsFromYAML(raw)
	} else {
		e, err = table.LoadEnumsFromJSON(raw)
	}
	if err != nil {
		return err
	}
	for _, entry := range e.Entries() {
		fmt.Printf("%s = %s\n", entry.Name, entry.Value)
	}
	return nil
}

func showBitmasks(cmd *cobra.Command, args []string) error {
	raw, isYAML, err := readTableFile(args[0])
	if err != nil {
		return err
	}
	var b *table.Bitmasks
	if isYAML {
		b, err = table.LoadBitmasksFromYAML(raw)
	} else {
		b, err = table.LoadBitmasksFromJSON(raw)
	}
	if err != nil {
		return err
	}
	for _, entry := range b.Entries() {
		fmt.Printf("%s = bit %s\n", entry.Name, entry.Value)
	}
	return nil
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "bltable",
		Short: "Inspect byte-layout Enums/Bitmasks table files",
		Long:  "Loads an Enums or Bitmasks table file and pretty-prints its entries, by Saferwall",
	}

	var enumsCmd = &cobra.Command{
		Use:   "enums",
		Short: "Inspect an Enums table",
	}
	var enumsShowCmd = &cobra.Command{
		Use:   "show <file>",
		Short: "Print every name = value entry in an Enums table file",
		Args:  cobra.ExactArgs(1),
		RunE:  showEnums,
	}

	var bitmasksCmd = &cobra.Command{
		Use:   "bitmasks",
		Short: "Inspect a Bitmasks table",
	}
	var bitmasksShowCmd = &cobra.Command{
		Use:   "show <file>",
		Short: "Print every name = bit-position entry in a Bitmasks table file",
		Args:  cobra.ExactArgs(1),
		RunE:  showBitmasks,
	}

	enumsCmd.AddCommand(enumsShowCmd)
	bitmasksCmd.AddCommand(bitmasksShowCmd)
	rootCmd.AddCommand(enumsCmd, bitmasksCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
