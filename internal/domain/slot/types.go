package slot

type Status string

const (
	StatusVacant   Status = "vacant"
	StatusOccupied Status = "occupied"
	StatusReserved Status = "reserved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusVacant, StatusOccupied, StatusReserved:
		return true
	default:
		return false
	}
}
