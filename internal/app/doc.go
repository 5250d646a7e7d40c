// Package app contains the core application logic. It defines the App
// struct, its configuration, and the linear run pipeline (resolve parameters,
// validate them, read input, transform, print), decoupled from any specific
// entrypoint like a CLI.
package app
