package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	ErrUnauthorized       = goerr.New("unauthorized")
	ErrRepositoryNotFound = goerr.New("repository not found or not accessible")
	ErrNotAFile           = goerr.New("path is not a file")
	ErrNotADirectory      = goerr.New("path is not a directory")
	ErrNotUTF8            = goerr.New("content is not valid UTF-8")

	ErrLLMUnavailable  = goerr.New("LLM service unavailable")
	ErrNoDocumentation = goerr.New("no documentation for repository")
)
