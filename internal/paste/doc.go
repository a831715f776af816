package paste

// Package paste wires the clipboard pipeline together: extract a URL from the
// pasted payload, classify it, optionally confirm with the user, then
// download-and-persist and insert the local-embed reference. Every error is
// contained to the single paste attempt.
