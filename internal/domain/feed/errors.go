package feed

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyContent    = errors.New("content cannot be empty")
	ErrContentTooLong  = errors.New("content is too long")
)
