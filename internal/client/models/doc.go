// Package models defines the wire DTOs exchanged with the social backend and
// the client-side session view derived from stored credentials.
package models
