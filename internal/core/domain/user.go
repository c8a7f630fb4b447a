package domain

import "time"

// User is the sole entity of the system: one registered account.
//
// The password is stored exactly as submitted (see users collection layout)
// but is never rendered into JSON responses or logs.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	Street    string    `json:"street,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Country   string    `json:"country,omitempty"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
