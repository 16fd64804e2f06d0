// Package subway is an in-memory transit network and fewest-hop route finder.
//
// A subway map is a set of named stations and named lines; each line is a
// sequence of stations. The module turns such a map into a graph and answers
// "how do I get from here to there with the fewest stops", naming the line
// to ride for every hop.
//
// Everything is organized under these subpackages:
//
//	core/         Station, Connection, Route and the thread-safe Graph
//	route/        breadth-first route search and route reconstruction
//	loader/       plain-text map format parser
//	render/       riding instructions and listings as text
//	api/          JSON-over-HTTP query service with a route cache
//	cmd/subway/   command line front end
//
// Quick ASCII example:
//
//	Alpha ─Red─ Beta ─Red─ Gamma
//	              │
//	             Blue
//	              │
//	            Delta
//
// Alpha → Delta is two hops: Red to Beta, then Blue to Delta.
//
//	go get github.com/katalvlaran/subway
package subway
