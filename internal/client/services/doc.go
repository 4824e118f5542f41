// Package services holds the REST services the CLI talks to: auth, posts,
// comments, users and the feed loader. Each service depends only on the
// client.Client interface and wraps errors with the operation name, so
// errors.Is/As keep working on client sentinels and *client.APIError.
package services
