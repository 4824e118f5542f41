package models

import "time"

type Post struct {
	ID         ID        `json:"id"`
	Author     Author    `json:"author"`
	Body       string    `json:"body"`
	Edited     bool      `json:"edited"`
	Liked      bool      `json:"liked"`
	LikesCount int       `json:"likes_count"`
	Created    time.Time `json:"created"`
	Updated    time.Time `json:"updated"`
}

type PostRequest struct {
	Author ID     `json:"author,omitempty"`
	Body   string `json:"body"`
}

// FeedItem is a post together with its comments.
type FeedItem struct {
	Post     Post
	Comments []Comment
}
