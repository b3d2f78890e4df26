package models

// Bay is a physical service bay, identified by a composite string id ending
// in a numeric suffix (e.g. "garage-42-bay-3").
type Bay struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"` // e.g. "Bay 3 (MOT ramp)"
}

// Technician is a member of the workshop staff assignable to service spans.
type Technician struct {
	ID     string   `bson:"id" json:"id"`
	Name   string   `bson:"name" json:"name"`
	Skills []string `bson:"skills,omitempty" json:"skills,omitempty"` // service ids the technician covers; empty = all
}

// BusinessHours bounds bookable time for one weekday, minutes from midnight.
type BusinessHours struct {
	Weekday     int  `bson:"weekday" json:"weekday"` // 0 = Sunday
	OpenMinute  int  `bson:"open_minute" json:"openMinute"`
	CloseMinute int  `bson:"close_minute" json:"closeMinute"`
	Closed      bool `bson:"closed" json:"closed"`
}

// ServiceDefinition is an offered workshop service with its default duration and price.
type ServiceDefinition struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Duration int     `bson:"duration" json:"duration"` // minutes
	Price    float64 `bson:"price" json:"price"`
}

// Garage is the workshop configuration the scheduler operates against.
type Garage struct {
	ID          string              `bson:"id" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Bays        []Bay               `bson:"bays" json:"bays"`
	Technicians []Technician        `bson:"technicians" json:"technicians"`
	Hours       []BusinessHours     `bson:"hours" json:"hours"`
	Services    []ServiceDefinition `bson:"services" json:"services"`
}

// HoursFor returns the business hours for a weekday (0 = Sunday), falling back
// to the given defaults when the garage has no entry for that day.
func (g Garage) HoursFor(weekday, defaultOpen, defaultClose int) BusinessHours {
	for _, h := range g.Hours {
		if h.Weekday == weekday {
			return h
		}
	}
	return BusinessHours{Weekday: weekday, OpenMinute: defaultOpen, CloseMinute: defaultClose}
}

// ServiceByID looks up an offered service definition.
func (g Garage) ServiceByID(id string) (ServiceDefinition, bool) {
	for _, s := range g.Services {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceDefinition{}, false
}
