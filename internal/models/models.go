package models

import "time"

// User roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Enquiry statuses
const (
	EnquiryStatusPending = "pending"
	EnquiryStatusOntouch = "ontouch"
	EnquiryStatusConfirm = "confirm"
)

// Enquiry service types
const (
	ServiceTypeStore         = "store"
	ServiceTypeTravel        = "travel"
	ServiceTypeAccommodation = "accommodation"
	ServiceTypeShraddha      = "shraddha"
)

// User represents a registered account. The password hash never leaves
// the server.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Product represents a store item
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Price       int       `json:"price" binding:"required"`
	Images      []string  `json:"images" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	InStock     int       `json:"inStock" binding:"gte=0"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Travel represents a travel package
type Travel struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	Price        int       `json:"price" binding:"required"`
	Duration     string    `json:"duration" binding:"required"`
	Destinations []string  `json:"destinations" binding:"required"`
	Images       []string  `json:"images" binding:"required"`
	Inclusions   []string  `json:"inclusions" binding:"required"`
	Exclusions   []string  `json:"exclusions" binding:"required"`
	MaxPeople    int       `json:"maxPeople" binding:"required,min=1"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Accommodation represents a bookable room
type Accommodation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Price       int       `json:"price" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Amenities   []string  `json:"amenities" binding:"required"`
	Images      []string  `json:"images" binding:"required"`
	MaxGuests   int       `json:"maxGuests" binding:"required,min=1"`
	RoomType    string    `json:"roomType" binding:"required"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ShraddhaPackage represents a ritual service package
type ShraddhaPackage struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	Price        int       `json:"price" binding:"required"`
	Duration     string    `json:"duration" binding:"required"`
	Inclusions   []string  `json:"inclusions" binding:"required"`
	Rituals      []string  `json:"rituals" binding:"required"`
	Requirements string    `json:"requirements" binding:"required"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Enquiry represents a customer lead tied to one of the service
// categories, tracked through its status lifecycle by administrators.
type Enquiry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ServiceType string    `json:"serviceType"`
	ServiceID   string    `json:"serviceId,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ServiceDate string    `json:"serviceDate"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	AdminNotes  string    `json:"adminNotes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Banner represents a homepage hero slide, sorted ascending by Order.
// IsActive is a 0/1 flag kept as an integer for wire compatibility; it is
// a pointer so an omitted value can be told apart from an explicit 0 and
// defaulted to 1 at creation.
type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" binding:"required"`
	Subtitle  string    `json:"subtitle" binding:"required"`
	Image     string    `json:"image" binding:"required"`
	CtaText   string    `json:"ctaText" binding:"required"`
	CtaLink   string    `json:"ctaLink" binding:"required"`
	IsActive  *int      `json:"isActive" binding:"omitempty,oneof=0 1"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}
