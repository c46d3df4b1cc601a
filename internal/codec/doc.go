// Package codec reads and writes configuration trees.
//
// YAML (and therefore JSON) goes through gopkg.in/yaml.v3 nodes so mapping
// keys keep their file order. HCL files are parsed with hclparse and each
// expression is walked in source order; only literal values are accepted,
// with a nil evaluation context. Trees render back to YAML for planted
// configs and to HCL for display.
package codec
