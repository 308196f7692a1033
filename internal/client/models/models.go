// Package models defines the client-side data model of the item store:
// items, users and the auth token pair exchanged with the backend.
package models

// Item is a single catalog entry. The ID is assigned by the server; the
// client only holds transient copies.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// User identifies the authenticated principal.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthTokens is the access/refresh pair issued on login and register.
// Both tokens are opaque strings to the client.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse is the body returned by the login and register endpoints.
type AuthResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// LoginData carries credentials for the login endpoint.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData carries the fields for the register endpoint.
type RegisterData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CreateItemData is the payload for creating an item.
type CreateItemData struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// UpdateItemData is the payload for a partial item update. Nil fields are
// omitted from the request body and left unchanged by the server.
type UpdateItemData struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}
