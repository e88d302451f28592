// Package submit delivers a registration payload to a hosted form endpoint.
//
// Delivery is two-tier. The primary Sender posts multipart form data and
// expects a JSON reply; any transport error, non-2xx status, or undecodable
// body counts as failure. On failure the Dispatcher hands the same payload
// to a Fallback, a traditional form post whose outcome is not observed.
// Dispatch reports a single Result: the fallback path is still a delivered
// result, with the primary failure kept in Result.PrimaryErr for callers and
// logs that want to tell the two apart.
package submit
