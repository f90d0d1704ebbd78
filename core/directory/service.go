package directory

import (
	"context"

	"github.com/trezcool/safari/core"
)

type (
	// API is the student/admin record surface of the portal backend.
	API interface {
		Students(ctx context.Context) ([]Student, error)
		Student(ctx context.Context, id int) (Student, error)
		StudentByEmail(ctx context.Context, email string) (Student, error)
		UpdateStudent(ctx context.Context, id int, data Student) (Student, error)
		DeleteStudent(ctx context.Context, id int) error

		Admins(ctx context.Context) ([]Admin, error)
		Admin(ctx context.Context, id int) (Admin, error)
		DeleteAdmin(ctx context.Context, id int) error
	}

	Service struct {
		api API
		log core.Logger
	}
)

func NewService(api API, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

func (svc *Service) Students(ctx context.Context) ([]Student, error) {
	return svc.api.Students(ctx)
}

func (svc *Service) Student(ctx context.Context, id int) (Student, error) {
	return svc.api.Student(ctx, id)
}

func (svc *Service) StudentByEmail(ctx context.Context, email string) (Student, error) {
	return svc.api.StudentByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) UpdateStudent(ctx context.Context, id int, data Student) (Student, error) {
	return svc.api.UpdateStudent(ctx, id, data)
}

func (svc *Service) DeleteStudent(ctx context.Context, id int) error {
	return svc.api.DeleteStudent(ctx, id)
}

func (svc *Service) Admins(ctx context.Context) ([]Admin, error) {
	return svc.api.Admins(ctx)
}

func (svc *Service) Admin(ctx context.Context, id int) (Admin, error) {
	return svc.api.Admin(ctx, id)
}

func (svc *Service) DeleteAdmin(ctx context.Context, id int) error {
	return svc.api.DeleteAdmin(ctx, id)
}
