// Package cli implements the interactive plateful terminal client: a REPL
// over the backend API with commands for chatting with the food assistant,
// generating recipes and images, and browsing the user's history and
// gallery.
package cli
