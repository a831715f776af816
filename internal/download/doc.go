package download

// Package download implements the fetch-and-persist pipeline: it ensures the
// attachment folder exists, fetches the image over HTTP, and writes the bytes
// into the vault under a generated filename. It also keeps the in-memory
// ledger of embed tasks the UI renders; the ledger is bookkeeping only and
// never influences a download.
