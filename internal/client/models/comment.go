package models

import "time"

type Comment struct {
	ID      ID        `json:"id"`
	Author  Author    `json:"author"`
	Post    ID        `json:"post"`
	Body    string    `json:"body"`
	Edited  bool      `json:"edited"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

type CommentRequest struct {
	Author ID     `json:"author,omitempty"`
	Post   ID     `json:"post,omitempty"`
	Body   string `json:"body"`
}
