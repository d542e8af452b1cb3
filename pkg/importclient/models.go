package importclient

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ImportResult is the body returned by POST /imports/documents.
type ImportResult struct {
	// Processed is the number of documents the server imported.
	Processed int `json:"processed"`
	// Errors lists per-document failures in server order.
	Errors []string `json:"errors,omitempty"`
}

// importResponse detects an absent processed field.
type importResponse struct {
	Processed *int     `json:"processed"`
	Errors    []string `json:"errors"`
}
