package docs

// swagger:parameters updateEvent deleteEvent findEventById updateCompany findCompanyById uploadCompanyLogo approveCompany rejectCompany setCompanyStatus deleteComment
type IdParam struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:parameters setRSVPStatus removeRSVP listRSVPsForEvent listCommentsForEvent
type EventIdParam struct {
	// in: path
	// required: true
	EventID uint `json:"eventId"`
}

// swagger:response
type Error struct {
	// in: body
	Body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
}

// swagger:response
type Success struct {
	// in: body
	Body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
}
