package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption  = goerr.New("invalid option")
	ErrInvalidRequest = goerr.New("invalid provisioning request")
	ErrInvalidLabel   = goerr.New("invalid label definition")
	ErrGitHubAPI      = goerr.New("github API error")
)
