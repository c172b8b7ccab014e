// Package main hosts the sublate CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the HTTP service (serve), one-shot
// subtitle generation (generate), the request-history view (history), the
// supported-language listing (languages), and configuration scaffolding
// (config init / config validate). It centralizes configuration resolution
// and structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: new behavior belongs in the internal packages
// first, surfaced here through dedicated commands or flags.
package main
