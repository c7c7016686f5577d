// Package github fetches pull-request and commit diff bundles from the
// GitHub REST API.
//
// Requests use the v3 diff media type for unified diffs and the JSON media
// type for metadata. A bearer token is attached when configured; without
// one, only public repositories are reachable. Commit listings paginate at
// 100 entries per page. There are no retries: any non-2xx response or
// network failure aborts the run.
package github
