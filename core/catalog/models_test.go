package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/safari/core/catalog"
)

func sampleUniversities() []catalog.University {
	return []catalog.University{
		{ID: 1, Name: "Samara National Research University", Location: "Samara, Russia",
			Description: "aerospace research", Students: "20000+", Rating: 4.7},
		{ID: 2, Name: "Kazan Innovative University", Location: "Kazan, Russia",
			Description: "economics, law and IT", Students: "11000+", Rating: 4.4},
		{ID: 3, Name: "Chuvash State Agrarian University", Location: "Cheboksary, Russia",
			Description: "agricultural sciences", Students: "10000+", Rating: 4.2},
	}
}

func TestFilterUniversities(t *testing.T) {
	list := sampleUniversities()

	tests := []struct {
		name    string
		filter  catalog.UniversityFilter
		wantIDs []int
	}{
		{name: "no filter", wantIDs: []int{1, 2, 3}},
		{name: "name match", filter: catalog.UniversityFilter{Search: "kazan"}, wantIDs: []int{2}},
		{name: "description match", filter: catalog.UniversityFilter{Search: "Aerospace"}, wantIDs: []int{1}},
		{name: "location", filter: catalog.UniversityFilter{Location: "Cheboksary, Russia"}, wantIDs: []int{3}},
		{name: "no hit", filter: catalog.UniversityFilter{Search: "harvard"}, wantIDs: []int{}},
		{
			name:    "search and location must both match",
			filter:  catalog.UniversityFilter{Search: "university", Location: "Samara, Russia"},
			wantIDs: []int{1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.FilterUniversities(list, tt.filter)
			ids := make([]int, 0, len(got))
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSortUniversities(t *testing.T) {
	t.Run("by name", func(t *testing.T) {
		list := sampleUniversities()
		catalog.SortUniversities(list, catalog.SortByName)
		assert.Equal(t, "Chuvash State Agrarian University", list[0].Name)
	})
	t.Run("by rating descending", func(t *testing.T) {
		list := sampleUniversities()
		catalog.SortUniversities(list, catalog.SortByRating)
		assert.Equal(t, 4.7, list[0].Rating)
	})
	t.Run("by student count descending", func(t *testing.T) {
		list := sampleUniversities()
		catalog.SortUniversities(list, catalog.SortByStudents)
		assert.Equal(t, "20000+", list[0].Students)
	})
}

func TestUniversity_StudentCount(t *testing.T) {
	assert.Equal(t, 15000, catalog.University{Students: "15000+"}.StudentCount())
	assert.Equal(t, 1200, catalog.University{Students: "1,200"}.StudentCount())
	assert.Equal(t, 0, catalog.University{}.StudentCount())
}

func TestFilterPrograms(t *testing.T) {
	list := []catalog.Program{
		{ID: 1, Name: "Aerospace Engineering", DegreeType: catalog.DegreeUndergraduate, Status: catalog.ProgramOpen, TuitionFeeUSD: 4200},
		{ID: 2, Name: "General Medicine", DegreeType: catalog.DegreeUndergraduate, Status: catalog.ProgramClosed, TuitionFeeUSD: 6500},
		{ID: 3, Name: "Computer Science", DegreeType: catalog.DegreePostgraduate, Status: catalog.ProgramOpen, TuitionFeeUSD: 3800},
	}

	got := catalog.FilterPrograms(list, catalog.ProgramFilter{DegreeType: catalog.DegreeUndergraduate})
	assert.Len(t, got, 2)

	got = catalog.FilterPrograms(list, catalog.ProgramFilter{Status: catalog.ProgramOpen, Search: "engineering"})
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	catalog.SortPrograms(list, catalog.SortByTuition)
	assert.Equal(t, 3, list[0].ID)
}

func TestNewProgram_Validate(t *testing.T) {
	np := catalog.NewProgram{
		UniversityID: 1, Name: "  Aerospace Engineering  ",
		DegreeType: catalog.DegreeUndergraduate, DurationYears: 4, TuitionFeeUSD: 4200,
	}
	assert.NoError(t, np.Validate())
	assert.Equal(t, "Aerospace Engineering", np.Name)

	bad := catalog.NewProgram{UniversityID: 1, Name: "X", DegreeType: "DIPLOMA", DurationYears: 3}
	assert.Error(t, bad.Validate())
}
