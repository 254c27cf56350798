/*
Package armature converts a canonical, human-authored robot-model description (a kinematic tree of rigid bodies with mass, inertia, joints and simplified visual geometry) into URDF for downstream simulation and visualization stacks.

# Concept

A model description is a YAML mapping with one root body and an ordered list of segments, each attached to an already-defined parent through a joint. Armature loads it once into an immutable, fully validated RobotSpec, linearizes the tree parent-before-child, and emits one self-contained URDF document. The same input always renders byte-identical output.

# Key Features

  - Eager validation: missing fields, malformed values, duplicate names and dangling parent references are rejected with typed errors before anything is written.
  - Deterministic serialization: stable traversal order, locale-independent number formatting, derived material names.
  - Safe markup: every attribute value is escaped for the XML reserved characters, whatever the source names contain.
  - Documented lossy capsule mapping: URDF has no capsule primitive, so capsules export as cylinders of the same radius and length.

# Usage

	package main

	import (
		"log"
		"os"

		"github.com/aretw0/armature"
	)

	func main() {
		exp, err := armature.New("models/golfer.yaml")
		if err != nil {
			log.Fatal(err)
		}
		if err := exp.Export(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

The armature CLI wraps the same entry points as "armature export", "armature validate" and "armature graph" subcommands.
*/
package armature
