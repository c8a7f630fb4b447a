package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Stack carries diagnostic detail and is only populated on 500s
// when the debug flag is enabled.
type errorResponse struct {
	Error string `json:"error"`
	Stack string `json:"stack,omitempty"`
}

// createUserRequest is the raw submitted field set. Mobile, email and
// username are normalized server-side before validation; the client-side
// mirror checks in public/ are UX only and never trusted.
type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}
