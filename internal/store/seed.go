package store

import (
	"fmt"

	"shivasadhana-api/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed loads the initial admin account and sample catalog content so a
// fresh process serves a browsable site immediately.
func (s *Store) Seed(adminEmail, adminPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	s.CreateUser(models.User{
		Name:         "Admin User",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})

	s.CreateProduct(models.Product{
		Name:        "Original Rudraksha Mala",
		Description: "Authentic 108 bead Rudraksha mala for meditation and spiritual practices",
		Price:       2500,
		Images:      []string{"https://images.unsplash.com/photo-1590736969955-71cc94901144?ixlib=rb-4.0.3&auto=format&fit=crop&w=500"},
		Category:    "Malas",
		InStock:     25,
	})

	s.CreateTravel(models.Travel{
		Name:         "Kedarnath Spiritual Journey",
		Description:  "Sacred pilgrimage to Lord Shiva's abode in the Himalayas",
		Price:        25000,
		Duration:     "5 days 4 nights",
		Destinations: []string{"Haridwar", "Kedarnath", "Badrinath"},
		Images:       []string{"https://images.unsplash.com/photo-1564507592333-c60657eea523?ixlib=rb-4.0.3&auto=format&fit=crop&w=500"},
		Inclusions:   []string{"Accommodation", "Meals", "Transportation", "Guide"},
		Exclusions:   []string{"Personal expenses", "Insurance"},
		MaxPeople:    15,
	})

	s.CreateAccommodation(models.Accommodation{
		Name:        "Sacred Ghat View Room",
		Description: "Peaceful accommodation overlooking the holy Ganges ghats",
		Price:       3500,
		Location:    "Dashashwamedh Ghat, Varanasi",
		Amenities:   []string{"River View", "AC", "WiFi", "Temple Nearby"},
		Images:      []string{"https://images.unsplash.com/photo-1571896349842-33c89424de2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=500"},
		MaxGuests:   4,
		RoomType:    "Deluxe",
	})

	s.CreateShraddhaPackage(models.ShraddhaPackage{
		Name:         "Complete Pind Daan Service",
		Description:  "Traditional ancestral worship ceremony with experienced purohits",
		Price:        5100,
		Duration:     "Full day ceremony",
		Inclusions:   []string{"Purohit services", "All materials", "Ceremony guidance"},
		Rituals:      []string{"Pind Daan", "Ganga Aarti", "Ancestral prayers"},
		Requirements: "Family details and ceremony date",
	})

	s.CreateBanner(models.Banner{
		Title:    "Your Spiritual Journey Begins Here",
		Subtitle: "Connecting faith, culture, and travel experiences in the sacred land of Varanasi",
		Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=1920",
		CtaText:  "Start Your Journey",
		CtaLink:  "/store",
	})

	return nil
}
