// Package server exposes the registry over HTTP.
//
// Lifecycle events arrive as explicit POSTs (/v1/events/publish,
// /v1/events/delete), lookups as GETs (/v1/resolve, /v1/mappings), and
// the public URL pattern /<base_path>/<sequence_id>/ is consumed by the
// routing middleware mounted ahead of the default content handler.
package server
