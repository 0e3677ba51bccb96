package deposit

type Status string

const (
	StatusCreated  Status = "created"
	StatusReceived Status = "received"
	StatusSettled  Status = "settled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusReceived, StatusSettled:
		return true
	default:
		return false
	}
}
