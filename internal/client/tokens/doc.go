// Package tokens persists the credential pair.
//
// A Store is a small key/value capability over named string slots. The API
// client is its only writer; everything else reads through the client.
// Three backends are provided:
//
//   - MemoryStore: process-local, used in tests and with -s memory.
//   - SQLStore: the metadata table of the local sqlite file (default).
//   - RedisStore: a shared redis instance, for several hosts sharing a login.
//
// Every backend applies a multi-slot Set atomically, so an access/refresh
// pair is never half written.
package tokens
