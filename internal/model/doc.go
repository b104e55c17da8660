// Package model defines the data structures shared across the app: download
// options, progress events, download results, and the per-window session
// state that gates the start action.
package model
