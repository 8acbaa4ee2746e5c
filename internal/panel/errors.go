package panel

// SessionInitError reports that no session could be created. It stays on the
// banner for the life of the panel.
type SessionInitError struct {
	Err error
}

func (e *SessionInitError) Error() string {
	if e.Err == nil {
		return "unable to start a chat session"
	}
	return "unable to start a chat session: " + e.Err.Error()
}

func (e *SessionInitError) Unwrap() error { return e.Err }

// SendError reports a failed send. It is cleared by the next reply.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	if e.Err == nil {
		return "message could not be delivered"
	}
	return "message could not be delivered: " + e.Err.Error()
}

func (e *SendError) Unwrap() error { return e.Err }
