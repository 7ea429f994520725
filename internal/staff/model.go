package staff

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
	RoleBarista Role = "barista"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier, RoleBarista:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// User is one staff record. PasswordHash is stored with the document but
// must never leave the service layer in API responses.
type User struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	PhoneNumber  string    `json:"phoneNumber"`
	JoinDate     time.Time `json:"joinDate"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
}

type NewUserInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	Status      Status `json:"status"`
	PhoneNumber string `json:"phoneNumber"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type UpdateUserInput struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Role        *Role   `json:"role,omitempty"`
	Status      *Status `json:"status,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}
