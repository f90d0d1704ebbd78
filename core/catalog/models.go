package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/trezcool/safari/core"
)

// Degree types
const (
	DegreeUndergraduate = "UNDERGRADUATE"
	DegreePostgraduate  = "POSTGRADUATE"
	DegreeDoctorate     = "DOCTORATE"
)

// Program statuses
const (
	ProgramOpen   = "OPEN"
	ProgramClosed = "CLOSED"
)

type University struct {
	ID          int     `json:"universityId"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Website     string  `json:"website"`
	Established string  `json:"established"`
	Students    string  `json:"students"` // e.g. "15000+"
	Rating      float64 `json:"rating"`
}

// StudentCount parses the human-readable student figure for sorting.
func (u University) StudentCount() int {
	var digits strings.Builder
	for _, r := range u.Students {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, _ := strconv.Atoi(digits.String())
	return n
}

type Program struct {
	ID            int     `json:"programId"`
	UniversityID  int     `json:"universityId"`
	Name          string  `json:"programName"`
	Description   string  `json:"description"`
	DegreeType    string  `json:"degreeType"`
	DurationYears float64 `json:"durationYears"`
	TuitionFeeUSD float64 `json:"tuitionFeeUsd"`
	Status        string  `json:"status"`
}

// NewUniversity carries the admin create/update form for a university.
type NewUniversity struct {
	Name        string  `json:"name" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Description string  `json:"description"`
	Website     string  `json:"website" validate:"omitempty,url"`
	Established string  `json:"established"`
	Students    string  `json:"students"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
}

func (nu *NewUniversity) Validate() error {
	nu.Name = core.CleanString(nu.Name)
	nu.Location = core.CleanString(nu.Location)
	return core.Validate.Struct(nu)
}

// NewProgram carries the admin create/update form for a program.
type NewProgram struct {
	UniversityID  int     `json:"universityId" validate:"required"`
	Name          string  `json:"programName" validate:"required"`
	Description   string  `json:"description"`
	DegreeType    string  `json:"degreeType" validate:"required,oneof=UNDERGRADUATE POSTGRADUATE DOCTORATE"`
	DurationYears float64 `json:"durationYears" validate:"gt=0"`
	TuitionFeeUSD float64 `json:"tuitionFeeUsd" validate:"gte=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=OPEN CLOSED"`
}

func (np *NewProgram) Validate() error {
	np.Name = core.CleanString(np.Name)
	return core.Validate.Struct(np)
}

// UniversityFilter matches the browse screen's client-side controls.
type UniversityFilter struct {
	Search   string
	Location string
}

// FilterUniversities applies a case-insensitive name/description search and
// an exact location match.
func FilterUniversities(list []University, f UniversityFilter) []University {
	search := strings.ToLower(core.CleanString(f.Search))
	out := make([]University, 0, len(list))
	for _, u := range list {
		nameMatch := strings.Contains(strings.ToLower(u.Name), search)
		descMatch := strings.Contains(strings.ToLower(u.Description), search)
		locMatch := f.Location == "" || u.Location == f.Location
		if (nameMatch || descMatch) && locMatch {
			out = append(out, u)
		}
	}
	return out
}

// Sort keys for SortUniversities.
const (
	SortByName     = "name"
	SortByRating   = "rating"
	SortByStudents = "students"
)

// SortUniversities sorts in place: name ascending, rating and student count
// descending.
func SortUniversities(list []University, key string) {
	sort.SliceStable(list, func(i, j int) bool {
		switch key {
		case SortByRating:
			return list[i].Rating > list[j].Rating
		case SortByStudents:
			return list[i].StudentCount() > list[j].StudentCount()
		default:
			return list[i].Name < list[j].Name
		}
	})
}

// ProgramFilter matches the programs screen's client-side controls.
type ProgramFilter struct {
	Search     string
	DegreeType string
	Status     string
}

func FilterPrograms(list []Program, f ProgramFilter) []Program {
	search := strings.ToLower(core.CleanString(f.Search))
	out := make([]Program, 0, len(list))
	for _, p := range list {
		nameMatch := strings.Contains(strings.ToLower(p.Name), search)
		descMatch := strings.Contains(strings.ToLower(p.Description), search)
		degreeMatch := f.DegreeType == "" || p.DegreeType == f.DegreeType
		statusMatch := f.Status == "" || p.Status == f.Status
		if (nameMatch || descMatch) && degreeMatch && statusMatch {
			out = append(out, p)
		}
	}
	return out
}

// Sort keys for SortPrograms.
const (
	SortByTuition = "tuition"
)

// SortPrograms sorts in place: name ascending or tuition ascending.
func SortPrograms(list []Program, key string) {
	sort.SliceStable(list, func(i, j int) bool {
		if key == SortByTuition {
			return list[i].TuitionFeeUSD < list[j].TuitionFeeUSD
		}
		return list[i].Name < list[j].Name
	})
}
