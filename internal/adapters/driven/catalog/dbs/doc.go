// Package dbs implements driven.Catalog against the CMS Dataset Bookkeeping
// System (DBS) reader REST API.
//
// Only the non-detailed file listing is used:
//
//	GET {base}/files?dataset=<dataset>&detail=0
//
// which returns a JSON array of objects carrying logical_file_name.
// Records are returned in response order.
//
// The client performs no retries and no authentication setup. Grid
// certificates or proxies, where required, are the caller environment's
// concern. Requests can optionally be paced with a token bucket.
package dbs
