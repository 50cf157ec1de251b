// Package entities holds the records the storyteller persists and the typed
// views of catalog content that combat reads.
package entities
