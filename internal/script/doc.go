// Package script drives a host.Simulator from Lua scenario scripts.
//
// A State exposes the simulator as the global table "host". Positions are
// 0-based byte offsets, exactly as the Go API uses them. Query functions take
// an optional trailing view ("primary", "secondary", 0 or 1) and default to
// the target view; editing functions always act on the target view.
//
//	host.open(host.PRIMARY, "a.txt", "helo wrld")
//	host.set_indicator(0)
//	local s = host.find_next(0, "helo")
//	host.fill(s, s + 4)
//	assert(host.underlined(0)[1] == "helo")
//
// Only the base, table, string and math libraries are available. Scripts
// cannot load files or modules, and each run is bounded by a timeout.
package script
