// Package engine implements the two conversion engines that share the
// directive grammar: Formatter renders typed arguments into text the way
// sprintf does, and Matcher parses text back into typed slots the way
// sscanf does.
//
// Both engines are stateless between calls and safe for concurrent use.
// An optional Cache, shareable between any number of engines, memoizes
// compiled format strings keyed by xxHash64 with collision verification.
//
// Example:
//
//	cache := engine.NewCache(0)
//	fm, _ := engine.NewFormatter(engine.WithFormatCache(cache))
//	out, err := fm.Format("%s=%0*d", value.Str("id"), value.Int(6), value.Int(42))
//	// out == "id=000042"
//
//	ma, _ := engine.NewMatcher(engine.WithScanCache(cache))
//	var id int
//	n, err := ma.Scan("id=000042", "id=%d", value.IntSlot(&id))
//	// n == 1, id == 42
package engine
