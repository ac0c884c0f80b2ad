package entity

import "time"

// Type tags an entity kind. Normalization dispatches on it.
type Type string

const (
	Money    Type = "MONEY"
	Date     Type = "DATE"
	Person   Type = "PERSON"
	Phone    Type = "PHONE"
	Email    Type = "EMAIL"
	Address  Type = "ADDRESS"
	Priority Type = "PRIORITY"
)

// Types lists every entity type in extraction order.
func Types() []Type {
	return []Type{Money, Date, Person, Phone, Email, Address, Priority}
}

// MoneyValue is an amount with its ISO currency code.
type MoneyValue struct {
	Text     string  `json:"text"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// DateKind tells how a date was expressed.
type DateKind string

const (
	DateAbsolute DateKind = "absolute"
	DateRelative DateKind = "relative"
	DateWeekday  DateKind = "weekday"
	DateTime     DateKind = "time"
)

// DateValue is a resolved calendar date; HasTime is set when a clock time
// was given, otherwise Date is at midnight.
type DateValue struct {
	Text    string    `json:"text"`
	Date    time.Time `json:"date"`
	Kind    DateKind  `json:"kind"`
	HasTime bool      `json:"hasTime"`
}

// PersonValue is a name split into parts. Title holds an honorific
// ("bey", "hanım", "sayın") when present.
type PersonValue struct {
	Text      string `json:"text"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Title     string `json:"title,omitempty"`
}

// PhoneValue is a phone number reduced to digits.
type PhoneValue struct {
	Text   string `json:"text"`
	Number string `json:"number"`
}

// EmailValue is a lowercased e-mail address.
type EmailValue struct {
	Text    string `json:"text"`
	Address string `json:"address"`
}

// AddressValue is a street address with its door number when given.
type AddressValue struct {
	Text   string `json:"text"`
	Full   string `json:"full"`
	Number string `json:"number,omitempty"`
}

// Level is a priority level.
type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// PriorityValue is a stated priority.
type PriorityValue struct {
	Text  string `json:"text"`
	Level Level  `json:"level"`
}

// Set groups extracted entities by type. Every list is non-nil.
type Set struct {
	Money      []MoneyValue    `json:"money"`
	Dates      []DateValue     `json:"date"`
	Persons    []PersonValue   `json:"person"`
	Phones     []PhoneValue    `json:"phone"`
	Emails     []EmailValue    `json:"email"`
	Addresses  []AddressValue  `json:"address"`
	Priorities []PriorityValue `json:"priority"`
}

// NewSet returns a Set with every list empty but allocated.
func NewSet() Set {
	return Set{
		Money:      []MoneyValue{},
		Dates:      []DateValue{},
		Persons:    []PersonValue{},
		Phones:     []PhoneValue{},
		Emails:     []EmailValue{},
		Addresses:  []AddressValue{},
		Priorities: []PriorityValue{},
	}
}

// Count returns the total number of entities.
func (s Set) Count() int {
	return len(s.Money) + len(s.Dates) + len(s.Persons) + len(s.Phones) +
		len(s.Emails) + len(s.Addresses) + len(s.Priorities)
}

// Len returns the number of entities of one type.
func (s Set) Len(t Type) int {
	switch t {
	case Money:
		return len(s.Money)
	case Date:
		return len(s.Dates)
	case Person:
		return len(s.Persons)
	case Phone:
		return len(s.Phones)
	case Email:
		return len(s.Emails)
	case Address:
		return len(s.Addresses)
	case Priority:
		return len(s.Priorities)
	}
	return 0
}
