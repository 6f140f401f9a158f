package router

import (
	"strconv"
	"strings"
)

// BuildPath produces the public display path for a base path and
// sequence id: "/<base_path>/<sequence_id>/".
func BuildPath(basePath string, sequenceID int64) string {
	return "/" + basePath + "/" + strconv.FormatInt(sequenceID, 10) + "/"
}

// MatchPath parses a request path against /<base_path>/<sequence_id>/
// (trailing slash optional). Returns ok=false for anything else,
// including non-numeric or non-positive sequence segments - a malformed
// path is simply not ours to route.
func MatchPath(path string) (basePath string, sequenceID int64, ok bool) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", 0, false
	}

	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || seq <= 0 {
		return "", 0, false
	}

	return parts[0], seq, true
}
