package domain

import "errors"

type CtxKey string

const (
	KeyUserID   CtxKey = "UserID"
	KeyUserName CtxKey = "UserName"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")
