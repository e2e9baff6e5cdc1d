// Package billing resolves how many hours of a recorded work session may be
// billed to a client under a site's billing configuration.
//
// Resolution is a fixed ladder. A session with no recorded time is invalid
// whatever its flags say. Otherwise an enabled breakdown rule wins over
// weather, weather wins over the day type, and the day type (public holiday,
// Saturday, Sunday, weekday) always terminates. Every function here is pure:
// no I/O, no shared state, no panics on malformed input.
package billing
