package testserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/safari/core/application"
	"github.com/trezcool/safari/core/catalog"
	"github.com/trezcool/safari/core/contact"
	"github.com/trezcool/safari/core/notify"
	"github.com/trezcool/safari/core/payment"
)

func intParam(ctx echo.Context, name string) int {
	n, _ := strconv.Atoi(ctx.Param(name))
	return n
}

// Notifications

func (s *Server) adminNotifications(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNotifications {
		return errJSON(ctx, http.StatusInternalServerError, "notification store unavailable")
	}
	return ctx.JSON(http.StatusOK, s.adminInbox)
}

func (s *Server) studentNotifications(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNotifications {
		return errJSON(ctx, http.StatusInternalServerError, "notification store unavailable")
	}
	items := s.studentInboxes[intParam(ctx, "id")]
	if items == nil {
		items = []notify.Notification{}
	}
	return ctx.JSON(http.StatusOK, items)
}

func (s *Server) markNotificationRead(ctx echo.Context) error {
	id := intParam(ctx, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailMarkRead[id] {
		return errJSON(ctx, http.StatusInternalServerError, "mark-read unavailable")
	}
	for i := range s.adminInbox {
		if s.adminInbox[i].ID == id {
			s.adminInbox[i].Status = notify.StatusRead
			return ctx.NoContent(http.StatusOK)
		}
	}
	for sid := range s.studentInboxes {
		for i := range s.studentInboxes[sid] {
			if s.studentInboxes[sid][i].ID == id {
				s.studentInboxes[sid][i].Status = notify.StatusRead
				return ctx.NoContent(http.StatusOK)
			}
		}
	}
	return errJSON(ctx, http.StatusNotFound, "notification not found")
}

func (s *Server) deleteNotification(ctx echo.Context) error {
	id := intParam(ctx, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.adminInbox {
		if s.adminInbox[i].ID == id {
			s.adminInbox = append(s.adminInbox[:i], s.adminInbox[i+1:]...)
			return ctx.NoContent(http.StatusNoContent)
		}
	}
	for sid, items := range s.studentInboxes {
		for i := range items {
			if items[i].ID == id {
				s.studentInboxes[sid] = append(items[:i], items[i+1:]...)
				return ctx.NoContent(http.StatusNoContent)
			}
		}
	}
	return errJSON(ctx, http.StatusNotFound, "notification not found")
}

// Catalog

func (s *Server) listUniversities(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ctx.JSON(http.StatusOK, s.universities)
}

func (s *Server) getUniversity(ctx echo.Context) error {
	id := intParam(ctx, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.universities {
		if u.ID == id {
			return ctx.JSON(http.StatusOK, u)
		}
	}
	return errJSON(ctx, http.StatusNotFound, "university not found")
}

func (s *Server) createUniversity(ctx echo.Context) error {
	var data catalog.NewUniversity
	if err := ctx.Bind(&data); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "malformed request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := catalog.University{
		ID: s.id(), Name: data.Name, Location: data.Location, Description: data.Description,
		Website: data.Website, Established: data.Established, Students: data.Students, Rating: data.Rating,
	}
	s.universities = append(s.universities, u)
	return ctx.JSON(http.StatusCreated, u)
}

func (s *Server) updateUniversity(ctx echo.Context) error {
	id := intParam(ctx, "id")
	var data catalog.NewUniversity
	if err := ctx.Bind(&data); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "malformed request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.universities {
		if s.universities[i].ID == id {
			s.universities[i] = catalog.University{
				ID: id, Name: data.Name, Location: data.Location, Description: data.Description,
				Website: data.Website, Established: data.Established, Students: data.Students, Rating: data.Rating,
			}
			return ctx.JSON(http.StatusOK, s.universities[i])
		}
	}
	return errJSON(ctx, http.StatusNotFound, "university not found")
}

func (s *Server) deleteUniversity(ctx echo.Context) error {
	id := intParam(ctx, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.universities {
		if s.universities[i].ID == id {
			s.universities = append(s.universities[:i], s.universities[i+1:]...)
			return ctx.NoContent(http.StatusNoContent)
		}
	}
	return errJSON(ctx, http.StatusNotFound, "university not found")
}

func (s *Server) listPrograms(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ctx.JSON(http.StatusOK, s.programs)
}

func (s *Server) programsByUniversity(ctx echo.Context) error {
	id := intParam(ctx, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Program, 0)
	for _, p := range s.programs {
		if p.UniversityID == id {
			out = append(out, p)
		}
	}
	return ctx.JSON(http.StatusOK, out)
}

func (s *Server) createProgram(ctx echo.Context) error {
	var data catalog.NewProgram
	if err := ctx.Bind(&data); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "malformed request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := catalog.Program{
		ID: s.id(), UniversityID: data.UniversityID, Name: data.Name, Description: data.Description,
		DegreeType: data.DegreeType, DurationYears: data.DurationYears,
		TuitionFeeUSD: data.TuitionFeeUSD, Status: data.Status,
	}
	s.programs = append(s.programs, p)
	return ctx.JSON(http.StatusCreated, p)
}

// Applications

func (s *Server) listApplications(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ctx.JSON(http.StatusOK, s.applications)
}

func (s *Server) applicationsByStudent(ctx echo.Context) error {
	id := intParam(ctx, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]application.Application, 0)
	for _, app := range s.applications {
		if app.StudentID == id {
			out = append(out, app)
		}
	}
	return ctx.JSON(http.StatusOK, out)
}

func (s *Server) submitApplication(ctx echo.Context) error {
	studentID := intParam(ctx, "id")
	var data application.NewApplication
	if err := ctx.Bind(&data); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "malformed request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	app := application.Application{
		ID: s.id(), StudentID: studentID, UniversityID: data.UniversityID, ProgramID: data.ProgramID,
		FirstName: data.FirstName, LastName: data.LastName, Email: data.Email,
		PhoneNumber: data.PhoneNumber, Country: data.Country, ApplicationType: data.ApplicationType,
		Status: application.StatusPending, CVFilePath: data.CVFilePath,
		MotivationLetter: data.MotivationLetter, SubmittedAt: time.Now().UTC(),
	}
	s.applications = append(s.applications, app)
	return ctx.JSON(http.StatusCreated, app)
}

func (s *Server) updateApplicationStatus(ctx echo.Context) error {
	id := intParam(ctx, "id")
	status := ctx.QueryParam("status")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.applications {
		if s.applications[i].ID == id {
			s.applications[i].Status = status
			return ctx.NoContent(http.StatusOK)
		}
	}
	return errJSON(ctx, http.StatusNotFound, "application not found")
}

func (s *Server) uploadCV(ctx echo.Context) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return errJSON(ctx, http.StatusBadRequest, "file part missing")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"filePath": "/uploads/cv/" + file.Filename})
}

// Directory

func (s *Server) listStudents(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ctx.JSON(http.StatusOK, s.students)
}

func (s *Server) listAdmins(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ctx.JSON(http.StatusOK, s.admins)
}

// Contact messages

func (s *Server) sendMessage(ctx echo.Context) error {
	var data contact.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "malformed request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := contact.Message{
		ID: s.id(), Name: data.Name, Email: data.Email, Subject: data.Subject,
		Body: data.Body, Type: data.Type, CreatedAt: time.Now().UTC(),
	}
	s.messages = append(s.messages, msg)
	return ctx.JSON(http.StatusCreated, msg)
}

func (s *Server) listMessages(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ctx.JSON(http.StatusOK, s.messages)
}

func (s *Server) markMessageRead(ctx echo.Context) error {
	id := intParam(ctx, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Read = true
			return ctx.NoContent(http.StatusOK)
		}
	}
	return errJSON(ctx, http.StatusNotFound, "message not found")
}

func (s *Server) unreadMessageCount(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, msg := range s.messages {
		if !msg.Read {
			count++
		}
	}
	return ctx.JSON(http.StatusOK, echo.Map{"count": count})
}

// Payments

func (s *Server) listPayments(ctx echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ctx.JSON(http.StatusOK, s.payments)
}

func (s *Server) uploadPayment(ctx echo.Context) error {
	var data payment.NewPayment
	if err := json.Unmarshal([]byte(ctx.FormValue("payment")), &data); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "payment part missing or malformed")
	}
	file, err := ctx.FormFile("slipFile")
	if err != nil {
		return errJSON(ctx, http.StatusBadRequest, "slipFile part missing")
	}
	src, err := file.Open()
	if err != nil {
		return errJSON(ctx, http.StatusBadRequest, "unreadable slip")
	}
	defer src.Close()
	if _, err := io.Copy(io.Discard, src); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "unreadable slip")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := payment.Payment{
		ID: s.id(), ApplicationID: data.ApplicationID, Amount: data.Amount, Method: data.Method,
		SlipFilePath: "/uploads/slips/" + file.Filename, Status: payment.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	s.payments = append(s.payments, p)
	return ctx.JSON(http.StatusCreated, p)
}

func (s *Server) updatePaymentStatus(ctx echo.Context) error {
	id := intParam(ctx, "id")
	status := ctx.QueryParam("status")
	reason := ctx.QueryParam("reason")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments[i].Status = status
			s.payments[i].Reason = reason
			return ctx.NoContent(http.StatusOK)
		}
	}
	return errJSON(ctx, http.StatusNotFound, "payment not found")
}
