// Package agripos exposes build metadata for the AgriPOS application.
package agripos

// Version is the application version reported by the CLI and the
// getAppVersion surface. Overridable at build time with
// -ldflags "-X github.com/agriposplus/agripos/pkg/agripos.Version=...".
var Version = "0.3.0"
