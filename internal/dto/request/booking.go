package request

type CreateBookingRequest struct {
	TrekID       string  `json:"trek_id" validate:"required,uuid4"`
	StartDate    string  `json:"start_date" validate:"required"` // YYYY-MM-DD
	Participants int     `json:"participants" validate:"required,min=1,max=100"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,min=10,max=15"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// UpdateBookingRequest carries a partial update; status changes are
// honored for admins only.
type UpdateBookingRequest struct {
	StartDate    *string `json:"start_date,omitempty"`
	Participants *int    `json:"participants,omitempty" validate:"omitempty,min=1,max=100"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,min=10,max=15"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}
