package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/socialcli/internal/client/models"
	"github.com/dmitrijs2005/socialcli/internal/common"
)

const (
	loginPath    = "/auth/login/"
	registerPath = "/auth/register/"
	postsPath    = "/post/"
	usersPath    = "/user/"
)

func checkID(id models.ID) error {
	if strings.TrimSpace(id.String()) == "" {
		return common.ErrorInvalidID
	}
	return nil
}

func postPath(id models.ID) string {
	return fmt.Sprintf("/post/%s/", url.PathEscape(id.String()))
}

func postActionPath(id models.ID, action string) string {
	return fmt.Sprintf("/post/%s/%s/", url.PathEscape(id.String()), action)
}

func commentsPath(postID models.ID) string {
	return postActionPath(postID, "comment")
}

func commentPath(postID, commentID models.ID) string {
	return fmt.Sprintf("/post/%s/comment/%s/", url.PathEscape(postID.String()), url.PathEscape(commentID.String()))
}

func userPath(id models.ID) string {
	return fmt.Sprintf("/user/%s/", url.PathEscape(id.String()))
}
