// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command bldump is a demonstration binary in the spirit of the
// teacher's flag-based cmd/main.go: it reads a file, builds one of a
// handful of built-in Type trees selected by flag, resolves it against
// the file's bytes, and prints the resulting Resolved.Display tree as
// indented text. It holds no project state of its own; bltable is the
// module's other demo entrypoint, cobra-based, for inspecting Enums
// and Bitmasks table files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/datatype"
	"github.com/saferwall/bytelayout/reader"
	"github.com/saferwall/bytelayout/render"
	"github.com/saferwall/bytelayout/scalar"
)

func main() {
	dumpCmd := flag.NewFlagSet("dump", flag.ExitOnError)
	wantHeader := dumpCmd.Bool("header", false, "Resolve a demo fixed-size header struct")
	wantIPv4 := dumpCmd.Bool("ipv4", false, "Resolve the first 4 bytes as an IPv4 address")
	wantJSON := dumpCmd.Bool("json", false, "Print the resolved tree as JSON instead of indented text")
	big := dumpCmd.Bool("big-endian", false, "Read multi-byte fields big-endian instead of little-endian")

	if len(os.Args) < 2 {
		showHelp()
	}

	switch os.Args[1] {
	case "dump":
		if len(os.Args) < 3 {
			showHelp()
		}
		dumpCmd.Parse(os.Args[3:])
		run(os.Args[2], *wantHeader, *wantIPv4, *wantJSON, *big)
	case "version":
		fmt.Println("You are using version 0.1.0")
	default:
		showHelp()
	}
}

func run(path string, wantHeader, wantIPv4, wantJSON, bigEndian bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	ctx := bl.New(raw)
	data := datatype.NewData()

	endian := bl.Little
	if bigEndian {
		endian = bl.Big
	}

	var t datatype.Type
	switch {
	case wantIPv4:
		t = datatype.NewIPv4(bl.NoAlign(), endian)
	case wantHeader:
		t = demoHeaderType(endian)
	default:
		t = datatype.NewInteger(bl.NoAlign(), reader.NewIntegerReader(scalar.U32, endian), render.HexIntegerRenderer{})
	}

	resolved, err := datatype.Resolve(t, ctx, nil, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error resolving %s: %v\n", path, err)
		os.Exit(1)
	}

	if wantJSON {
		out, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error marshaling result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}
	printResolved(*resolved, 0)
}

// demoHeaderType is a small fixed-size struct: a u32 magic, a u16
// version, and an 8-byte fixed ASCII name - a stand-in for the kind of
// file-header struct the teacher's dosheader.go/ntheader.go describe
// field by field.
func demoHeaderType(endian bl.Endian) datatype.Type {
	t, err := datatype.NewStruct(bl.NoAlign(), []datatype.Child{
		{Name: "magic", Type: datatype.NewInteger(bl.NoAlign(),
			reader.NewIntegerReader(scalar.U32, endian), render.HexIntegerRenderer{})},
		{Name: "version", Type: datatype.NewInteger(bl.NoAlign(),
			reader.NewIntegerReader(scalar.U16, endian), render.DefaultIntegerRenderer{})},
		{Name: "name", Type: datatype.NewFixedString(bl.NoAlign(), 8,
			reader.NewCharacterReader(reader.ASCII, endian), render.CharacterRenderer{})},
	})
	if err != nil {
		panic(err)
	}
	return t
}

func printResolved(r datatype.Resolved, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	name := ""
	if r.FieldName != nil {
		name = *r.FieldName + ": "
	}
	fmt.Printf("%s%s%s\n", indent, name, r.Display)
	for _, c := range r.Children {
		printResolved(c, depth+1)
	}
}

func showHelp() {
	fmt.Print(
		`
╔╗ ╦  ┌┬┐┬ ┬┌┬┐┌─┐
╠╩╗║   │││ ││││├─┘
╚═╝╩═╝─┴┘└─┘┴ ┴┴

	A byte-layout resolver demo binary.
	Brought to you by Saferwall (c) 2018 MIT
`)
	fmt.Println("\nUsage: bldump dump <file> [-header|-ipv4] [-json] [-big-endian]")
	fmt.Println("       bldump version")
	os.Exit(1)
}
