package models

// Partial-update payloads. A nil field means "leave the stored value
// alone"; a set field overwrites it. The store applies these as a
// shallow merge under the collection lock.

type ProductUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int      `json:"price"`
	Images      *[]string `json:"images"`
	Category    *string   `json:"category"`
	InStock     *int      `json:"inStock" binding:"omitempty,gte=0"`
}

func (u *ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.InStock != nil {
		p.InStock = *u.InStock
	}
}

type TravelUpdate struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Price        *int      `json:"price"`
	Duration     *string   `json:"duration"`
	Destinations *[]string `json:"destinations"`
	Images       *[]string `json:"images"`
	Inclusions   *[]string `json:"inclusions"`
	Exclusions   *[]string `json:"exclusions"`
	MaxPeople    *int      `json:"maxPeople" binding:"omitempty,min=1"`
}

func (u *TravelUpdate) Apply(t *Travel) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Price != nil {
		t.Price = *u.Price
	}
	if u.Duration != nil {
		t.Duration = *u.Duration
	}
	if u.Destinations != nil {
		t.Destinations = *u.Destinations
	}
	if u.Images != nil {
		t.Images = *u.Images
	}
	if u.Inclusions != nil {
		t.Inclusions = *u.Inclusions
	}
	if u.Exclusions != nil {
		t.Exclusions = *u.Exclusions
	}
	if u.MaxPeople != nil {
		t.MaxPeople = *u.MaxPeople
	}
}

type AccommodationUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int      `json:"price"`
	Location    *string   `json:"location"`
	Amenities   *[]string `json:"amenities"`
	Images      *[]string `json:"images"`
	MaxGuests   *int      `json:"maxGuests" binding:"omitempty,min=1"`
	RoomType    *string   `json:"roomType"`
}

func (u *AccommodationUpdate) Apply(a *Accommodation) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.Price != nil {
		a.Price = *u.Price
	}
	if u.Location != nil {
		a.Location = *u.Location
	}
	if u.Amenities != nil {
		a.Amenities = *u.Amenities
	}
	if u.Images != nil {
		a.Images = *u.Images
	}
	if u.MaxGuests != nil {
		a.MaxGuests = *u.MaxGuests
	}
	if u.RoomType != nil {
		a.RoomType = *u.RoomType
	}
}

type ShraddhaPackageUpdate struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Price        *int      `json:"price"`
	Duration     *string   `json:"duration"`
	Inclusions   *[]string `json:"inclusions"`
	Rituals      *[]string `json:"rituals"`
	Requirements *string   `json:"requirements"`
}

func (u *ShraddhaPackageUpdate) Apply(p *ShraddhaPackage) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Duration != nil {
		p.Duration = *u.Duration
	}
	if u.Inclusions != nil {
		p.Inclusions = *u.Inclusions
	}
	if u.Rituals != nil {
		p.Rituals = *u.Rituals
	}
	if u.Requirements != nil {
		p.Requirements = *u.Requirements
	}
}

type EnquiryUpdate struct {
	Status     *string `json:"status" binding:"omitempty,oneof=pending ontouch confirm"`
	AdminNotes *string `json:"adminNotes"`
}

func (u *EnquiryUpdate) Apply(e *Enquiry) {
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.AdminNotes != nil {
		e.AdminNotes = *u.AdminNotes
	}
}

type BannerUpdate struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Image    *string `json:"image"`
	CtaText  *string `json:"ctaText"`
	CtaLink  *string `json:"ctaLink"`
	IsActive *int    `json:"isActive" binding:"omitempty,oneof=0 1"`
	Order    *int    `json:"order"`
}

func (u *BannerUpdate) Apply(b *Banner) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Subtitle != nil {
		b.Subtitle = *u.Subtitle
	}
	if u.Image != nil {
		b.Image = *u.Image
	}
	if u.CtaText != nil {
		b.CtaText = *u.CtaText
	}
	if u.CtaLink != nil {
		b.CtaLink = *u.CtaLink
	}
	if u.IsActive != nil {
		v := *u.IsActive
		b.IsActive = &v
	}
	if u.Order != nil {
		b.Order = *u.Order
	}
}
