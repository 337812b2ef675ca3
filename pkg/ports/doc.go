// Package ports declares the boundary interfaces of the Ouro engine.
// Adapters (memory, file, redis, HTTP, MCP) implement or consume these,
// keeping the core free of infrastructure concerns.
package ports
