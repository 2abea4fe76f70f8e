// Package backbutton dispatches the platform back signal to whatever was
// opened most recently.
//
// Handlers register when they open and deregister when they close. Each
// back signal closes the top handler; if the handler did not deregister
// itself while closing, the registry removes it afterwards.
package backbutton
