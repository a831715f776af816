package model

// Package model defines domain data structures used across the app: naming
// policies, download requests and results, and the embed task ledger shown in
// the UI. Structures are designed for direct binding in the UI and explicit
// state transitions.
