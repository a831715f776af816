package classify

// Package classify decides whether a pasted string is a direct image URL.
// Classification is by URL path extension only; query strings and fragments
// are never consulted.
