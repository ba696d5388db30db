package client

import "errors"

var (
	// ErrConnectionSetupFailed means the transport could not be established at
	// all. It is fatal; the client never retries.
	ErrConnectionSetupFailed = errors.New("connection setup failed")
	// ErrTransportFault means a live connection broke without a close frame.
	ErrTransportFault = errors.New("transport fault")
)
