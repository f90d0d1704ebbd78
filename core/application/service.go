package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
)

type (
	// API is the application surface of the portal backend.
	API interface {
		Applications(ctx context.Context) ([]Application, error)
		Application(ctx context.Context, id int) (Application, error)
		ApplicationsByStudent(ctx context.Context, studentID int) ([]Application, error)
		ApplicationsByUniversity(ctx context.Context, universityID int) ([]Application, error)
		ApplicationsByProgram(ctx context.Context, programID int) ([]Application, error)
		ApplicationsByStatus(ctx context.Context, status string) ([]Application, error)
		SubmitApplication(ctx context.Context, studentID int, data NewApplication) (Application, error)
		UpdateApplication(ctx context.Context, id int, data NewApplication) (Application, error)
		UpdateApplicationStatus(ctx context.Context, id int, status string) error
		DeleteApplication(ctx context.Context, id int) error
		UploadCV(ctx context.Context, cv core.Attachment) (filePath string, err error)
	}

	Service struct {
		api API
		log core.Logger
	}
)

func NewService(api API, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

// Submit uploads the CV first, then submits the application form carrying
// the stored file path. A failed CV upload aborts the submission.
func (svc *Service) Submit(ctx context.Context, studentID int, data NewApplication, cv *core.Attachment) (Application, error) {
	if err := data.Validate(); err != nil {
		return Application{}, err
	}
	if cv != nil {
		path, err := svc.api.UploadCV(ctx, *cv)
		if err != nil {
			return Application{}, errors.Wrap(err, "uploading CV")
		}
		data.CVFilePath = path
	}
	return svc.api.SubmitApplication(ctx, studentID, data)
}

func (svc *Service) All(ctx context.Context) ([]Application, error) {
	return svc.api.Applications(ctx)
}

func (svc *Service) Get(ctx context.Context, id int) (Application, error) {
	return svc.api.Application(ctx, id)
}

func (svc *Service) ByStudent(ctx context.Context, studentID int) ([]Application, error) {
	return svc.api.ApplicationsByStudent(ctx, studentID)
}

func (svc *Service) ByUniversity(ctx context.Context, universityID int) ([]Application, error) {
	return svc.api.ApplicationsByUniversity(ctx, universityID)
}

func (svc *Service) ByProgram(ctx context.Context, programID int) ([]Application, error) {
	return svc.api.ApplicationsByProgram(ctx, programID)
}

func (svc *Service) ByStatus(ctx context.Context, status string) ([]Application, error) {
	return svc.api.ApplicationsByStatus(ctx, status)
}

func (svc *Service) Update(ctx context.Context, id int, data NewApplication) (Application, error) {
	if err := data.Validate(); err != nil {
		return Application{}, err
	}
	return svc.api.UpdateApplication(ctx, id, data)
}

// SetStatus is the admin review action.
func (svc *Service) SetStatus(ctx context.Context, id int, status string) error {
	return svc.api.UpdateApplicationStatus(ctx, id, status)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.api.DeleteApplication(ctx, id)
}
