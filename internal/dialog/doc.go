// Package dialog contains the overlays that the back key can close.
//
// Allowed here:
// - backbutton.Handler implementations and their presentation
//
// Not allowed here:
// - key handling and program state, which live in tui
package dialog
