// Package platform contains OS integration glue: scoped temporary
// workspaces, output file discovery, MIME detection, and revealing saved
// files in the system file manager.
package platform
