package dto

// SessionDirtyMessage is the payload published after every session mutation;
// the consumer persists the blob in response.
type SessionDirtyMessage struct {
	Reason string `json:"reason"`
}
