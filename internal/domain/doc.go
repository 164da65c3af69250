// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, benchmark results) and contracts (interfaces) only.
package domain
