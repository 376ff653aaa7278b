package models

// Role selects which side of the marketplace a session belongs to. Farmer and
// buyer sessions are independent and may coexist on one machine.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Farmer and Buyer carry the role-specific profile fields collected at
// registration time.
type Farmer struct {
	User        User    `json:"user"`
	PhoneNumber string  `json:"phone_number"`
	FarmAddress string  `json:"farm_address"`
	FarmSize    float64 `json:"farm_size"`
}

type Buyer struct {
	User          User   `json:"user"`
	PhoneNumber   string `json:"phone_number"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterFarmerRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	PhoneNumber string  `json:"phone_number"`
	FarmAddress string  `json:"farm_address"`
	FarmSize    float64 `json:"farm_size"`
}

type RegisterBuyerRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	PhoneNumber   string `json:"phone_number"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}
