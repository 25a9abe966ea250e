package handler

// --- Request / Response types ---

type bookRequest struct {
	// FlightDate is the textual dd/mm/yyyy HH:MM form, e.g. "01/12/2025 10:30".
	FlightDate   string `json:"flight_date"   validate:"required"`
	PremiumCabin bool   `json:"premium_cabin"`
	Tickets      int    `json:"tickets"       validate:"required,gt=0"`
	Airline      string `json:"airline"       validate:"required"`
	Username     string `json:"username"      validate:"required"`
}

type confirmRequest struct {
	CardNumber   string `json:"card_number"  validate:"required"`
	Installments int    `json:"installments" validate:"required,gte=1"`
	CabinClass   string `json:"cabin_class"  validate:"required"`
	SeatNumber   string `json:"seat_number"  validate:"required"`
	Bags         int    `json:"bags"         validate:"gte=0"`
}

type confirmationResponse struct {
	CardNumber   string `json:"card_number"`
	Installments int    `json:"installments"`
	CabinClass   string `json:"cabin_class"`
	SeatNumber   string `json:"seat_number"`
	Bags         int    `json:"bags"`
}

type reservationResponse struct {
	Username     string                `json:"username"`
	FlightDate   string                `json:"flight_date"`
	PremiumCabin bool                  `json:"premium_cabin"`
	Tickets      int                   `json:"tickets"`
	Airline      string                `json:"airline"`
	Confirmed    bool                  `json:"confirmed"`
	Confirmation *confirmationResponse `json:"confirmation,omitempty"`
}

type itineraryEntryResponse struct {
	Index      int    `json:"index"`
	FlightDate string `json:"flight_date"`
	Airline    string `json:"airline"`
	Tickets    int    `json:"tickets"`
	Cabin      string `json:"cabin"`
	Confirmed  bool   `json:"confirmed"`
	SeatNumber string `json:"seat_number,omitempty"`
	CabinClass string `json:"cabin_class,omitempty"`
}

type itineraryResponse struct {
	Username string                   `json:"username"`
	Entries  []itineraryEntryResponse `json:"entries"`
	Text     string                   `json:"text"`
}
