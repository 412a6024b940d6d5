package domain

// User is a registered participant. The name is the whole identity: requests
// claim it via the X-User-Name header and it is matched case-insensitively.
type User struct {
	Name string `json:"name"`
}
