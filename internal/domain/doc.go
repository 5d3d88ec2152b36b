// Package domain defines core data models, sentinel errors and interfaces
// shared across the app. It contains plain types and contracts only.
package domain
