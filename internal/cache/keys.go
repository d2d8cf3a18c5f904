package cache

import "strings"

// KeyPrefix namespaces every key this service writes.
const KeyPrefix = "docquiz"

// Key joins parts under KeyPrefix with ':'. Empty parts are dropped and a ':'
// inside a part becomes '_', so caller data cannot forge another key.
func Key(parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, KeyPrefix)
	for _, p := range parts {
		if p == "" {
			continue
		}
		segments = append(segments, strings.ReplaceAll(p, ":", "_"))
	}
	return strings.Join(segments, ":")
}

// GenerationResultKey is where a generation result is stored.
func GenerationResultKey(generationID string) string {
	return Key("generation", "result", generationID)
}
