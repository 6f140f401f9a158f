// Package router builds and matches the public URL pattern
// /<base_path>/<sequence_id>/ for sequenced records.
//
// BuildPath and MatchPath are pure functions over the pattern. Rewrite is
// an http middleware that consumes the pattern ahead of the host's
// default content resolution: on a successful match it redirects the
// request's content query to the resolved permanent record and clears
// the path-derived parameter; on any miss the request passes through
// untouched.
package router
