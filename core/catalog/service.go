package catalog

import (
	"context"

	"github.com/trezcool/safari/core"
)

type (
	// API is the catalog surface of the portal backend.
	API interface {
		Universities(ctx context.Context) ([]University, error)
		University(ctx context.Context, id int) (University, error)
		CreateUniversity(ctx context.Context, data NewUniversity) (University, error)
		UpdateUniversity(ctx context.Context, id int, data NewUniversity) (University, error)
		DeleteUniversity(ctx context.Context, id int) error

		Programs(ctx context.Context) ([]Program, error)
		Program(ctx context.Context, id int) (Program, error)
		ProgramsByUniversity(ctx context.Context, universityID int) ([]Program, error)
		ProgramsByDegreeType(ctx context.Context, degreeType string) ([]Program, error)
		ProgramsByStatus(ctx context.Context, status string) ([]Program, error)
		CreateProgram(ctx context.Context, data NewProgram) (Program, error)
		UpdateProgram(ctx context.Context, id int, data NewProgram) (Program, error)
		DeleteProgram(ctx context.Context, id int) error
	}

	Service struct {
		api API
		log core.Logger
	}
)

func NewService(api API, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

// BrowseUniversities lists universities for the public browse screen. When
// the backend list is empty or the call fails, the bundled seed list is
// served instead so browsing never goes dark.
func (svc *Service) BrowseUniversities(ctx context.Context) []University {
	list, err := svc.api.Universities(ctx)
	if err != nil {
		svc.log.Warn("catalog: listing universities; serving bundled list", err)
		return SeedUniversities()
	}
	if len(list) == 0 {
		return SeedUniversities()
	}
	return list
}

func (svc *Service) University(ctx context.Context, id int) (University, error) {
	return svc.api.University(ctx, id)
}

func (svc *Service) CreateUniversity(ctx context.Context, data NewUniversity) (University, error) {
	if err := data.Validate(); err != nil {
		return University{}, err
	}
	return svc.api.CreateUniversity(ctx, data)
}

func (svc *Service) UpdateUniversity(ctx context.Context, id int, data NewUniversity) (University, error) {
	if err := data.Validate(); err != nil {
		return University{}, err
	}
	return svc.api.UpdateUniversity(ctx, id, data)
}

func (svc *Service) DeleteUniversity(ctx context.Context, id int) error {
	return svc.api.DeleteUniversity(ctx, id)
}

func (svc *Service) Programs(ctx context.Context) ([]Program, error) {
	return svc.api.Programs(ctx)
}

func (svc *Service) Program(ctx context.Context, id int) (Program, error) {
	return svc.api.Program(ctx, id)
}

func (svc *Service) ProgramsByUniversity(ctx context.Context, universityID int) ([]Program, error) {
	return svc.api.ProgramsByUniversity(ctx, universityID)
}

func (svc *Service) ProgramsByDegreeType(ctx context.Context, degreeType string) ([]Program, error) {
	return svc.api.ProgramsByDegreeType(ctx, degreeType)
}

func (svc *Service) ProgramsByStatus(ctx context.Context, status string) ([]Program, error) {
	return svc.api.ProgramsByStatus(ctx, status)
}

func (svc *Service) CreateProgram(ctx context.Context, data NewProgram) (Program, error) {
	if err := data.Validate(); err != nil {
		return Program{}, err
	}
	return svc.api.CreateProgram(ctx, data)
}

func (svc *Service) UpdateProgram(ctx context.Context, id int, data NewProgram) (Program, error) {
	if err := data.Validate(); err != nil {
		return Program{}, err
	}
	return svc.api.UpdateProgram(ctx, id, data)
}

func (svc *Service) DeleteProgram(ctx context.Context, id int) error {
	return svc.api.DeleteProgram(ctx, id)
}
