package types

import (
	"strconv"
	"strings"
)

// ID types document what each identifier refers to in the remote pipeline.

// VacancyID identifies a job vacancy. The remote service treats it as an opaque path segment.
type VacancyID string

// ApplicationID identifies a single application within a vacancy's pipeline
type ApplicationID int

// String returns the vacancy id without surrounding whitespace
func (id VacancyID) String() string {
	return strings.TrimSpace(string(id))
}

// IsZero reports whether the vacancy id is empty
func (id VacancyID) IsZero() bool {
	return id.String() == ""
}

func (id ApplicationID) ToInt() int {
	return int(id)
}

func (id ApplicationID) String() string {
	return strconv.Itoa(int(id))
}

// Valid reports whether the id can name a remote application
func (id ApplicationID) Valid() bool {
	return id > 0
}

// ParseApplicationID converts a textual id (as carried by a drop payload or a CLI flag)
func ParseApplicationID(s string) (ApplicationID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return ApplicationID(n), nil
}
