// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the sow lifecycle (load a launch file,
// derive experiments, then print or plant them), decoupled from any specific
// entrypoint like a CLI.
package app
