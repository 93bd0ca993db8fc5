// Package types defines the core types and interfaces used throughout
// linkkeeper: the Link value stored by every backend, the Backend
// capability interface, and the AccessToken credential type.
package types
