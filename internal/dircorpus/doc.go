// Package dircorpus is a plant.Corpus backed by a run directory. Each
// experiment is a directory, named by its slot name relative to the root,
// holding a config.yml.
package dircorpus
