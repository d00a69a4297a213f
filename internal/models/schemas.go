package models

import "time"

// Collection names follow the lowercase model name convention.
const (
	UserCollection    = "user"
	ProductCollection = "product"
	BookingCollection = "booking"
)

type User struct {
	Name     string `json:"name" bson:"name" validate:"required"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Address  string `json:"address" bson:"address" validate:"required"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

type Product struct {
	Title       string  `json:"title" bson:"title" validate:"required"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Category    string  `json:"category" bson:"category" validate:"required"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
}

// Booking is an appointment request for Alankritha Naturals.
type Booking struct {
	Name              string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Phone             string    `json:"phone" bson:"phone" validate:"required,min=7,max=20"`
	Email             string    `json:"email" bson:"email" validate:"required,email"`
	Service           string    `json:"service" bson:"service" validate:"required,oneof='Hair Styling' 'Facials' 'Manicure' 'Pedicure' 'Bridal Makeup' 'Skincare'"`
	PreferredDatetime time.Time `json:"preferred_datetime" bson:"preferred_datetime" validate:"required"`
	Notes             string    `json:"notes,omitempty" bson:"notes,omitempty" validate:"max=1000"`
	Status            string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed failed"`
}
