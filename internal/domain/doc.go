// Package domain defines the value types and service contracts shared across
// the app. It contains fixed-size key material (types) and the interfaces the
// services implement (interfaces) only.
package domain
