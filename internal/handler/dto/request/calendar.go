package request

type CreateCalendarSourceRequest struct {
	Name    string `json:"name" binding:"required,max=100" example:"Airbnb"`
	URL     string `json:"url" binding:"required,calendar_url" example:"https://www.airbnb.com/calendar/ical/123.ics"`
	Enabled *bool  `json:"enabled"`
}
