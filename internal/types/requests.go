package types

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddToCartRequest uses pointers so a missing field can be told apart from zero.
type AddToCartRequest struct {
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

// UpdateCartRequest represents the request body for setting a cart quantity
type UpdateCartRequest struct {
	Quantity *int `json:"quantity"`
}

// AddActivityRequest represents the request body for recording an activity
type AddActivityRequest struct {
	ActivityType string `json:"activity_type"`
	Description  string `json:"description"`
}
