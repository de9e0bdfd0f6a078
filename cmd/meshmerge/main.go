// meshmerge merges the meshes of a scene hierarchy into one mesh with one
// submesh per material.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		printUsage(stdout)
		return errUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "merge":
		return cmdMerge(rest, stdout)
	case "collect", "ls":
		return cmdCollect(rest, stdout)
	case "info":
		return cmdInfo(rest, stdout)
	case "config":
		return cmdConfig(rest, stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stdout)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `meshmerge - merge scene meshes by material

Usage:
  meshmerge <command> [options]

Commands:
  merge [flags] [scene.yaml]       Merge the configured roots into one mesh
  collect <scene.yaml> [root...]   List the nodes a merge would consume
  info <file.mmsh>                 Show a saved mesh
  config [flags] <out.yaml|.toml>  Write the resolved merge config
  help                             Show this help

Merge and config flags:
  -config <file>   Config file (.yaml or .toml)
  -scene <file>    Scene document
  -root <path>     Node path to merge, repeatable (default: every scene root)
  -pivot <path>    Node whose world position becomes the mesh origin
  -name <name>     Merged object name (mesh is <name>Mesh)
  -out <dir>       Directory for the saved mesh
  -save            Save the merged mesh
  -debug           Debug logging

Examples:
  meshmerge merge -root House -pivot House -name House -save village.yaml
  meshmerge collect village.yaml House Garden/Shed
  meshmerge info Assets/SavedMeshes/HouseMesh.mmsh
  meshmerge config -root House -save meshmerge.toml`)
}
