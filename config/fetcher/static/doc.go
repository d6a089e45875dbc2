// Package static provides an in-memory implementation of config.DataFetcher.
//
// Usage:
//
//	fetcher := static.NewFetcher([]byte("elcodi_comment:\n  comments:\n    cache_key: c\n"))
//	data, err := fetcher.Fetch()
//
// An empty fetcher is valid and yields zero bytes; combined with
// config.Optional it makes every extension fall back on its defaults.
package static
