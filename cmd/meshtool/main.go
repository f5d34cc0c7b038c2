// meshtool is a CLI utility for exercising halfedge mesh operations on
// generated shapes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "quad":
		err = cmdQuad(args)
	case "unroll":
		err = cmdUnroll(args)
	case "dual":
		err = cmdDual(args)
	case "detach":
		err = cmdDetach(args)
	case "check":
		err = cmdCheck(args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - halfedge mesh utility

Usage:
  meshtool <command> [options] [args]

Commands:
  info                 Show counts, components and geometry of the shape
  quad                 Quadrangulate every face with more than four sides
  unroll               Cut the shape along a spanning tree and flatten it
  dual                 Build the dual mesh
  detach <u> <v>       Cut the edge between vertices u and v
  check                Run every operator and validate the results
  config [path]        Write the effective config as YAML

Options:
  -config <file>       Config file (default ./meshtool.yaml)
  -shape <kind>        box, tetrahedron, bipyramid, grid, ngon
  -sides <n>           Side count for ngon and bipyramid
  -strategy <name>     fan or strip
  -seed <face>         Seed face for unroll
  -factor <f>          Unroll factor in [0, 1]
  -workers <n>         Worker goroutines (0 = all CPUs)
  -debug               Enable debug logging
  -log <file>          Also log to a rotating file

Examples:
  meshtool info -shape bipyramid -sides 5
  meshtool quad -shape ngon -sides 9 -strategy fan
  meshtool unroll -shape box -seed 2 -factor 0.5
  meshtool detach -shape grid 1 6`)
}
