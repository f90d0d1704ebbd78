// Package testserver is an in-process stand-in for the Safari portal backend,
// used by client tests. It speaks the same JSON contract, issues real signed
// bearer tokens (opaque to the client) and offers failure-injection knobs for
// exercising degraded paths.
package testserver

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/safari/core/application"
	"github.com/trezcool/safari/core/catalog"
	"github.com/trezcool/safari/core/contact"
	"github.com/trezcool/safari/core/directory"
	"github.com/trezcool/safari/core/notify"
	"github.com/trezcool/safari/core/payment"
	"github.com/trezcool/safari/core/session"
)

var signingKey = []byte("test-secret")

// Account is a login-able backend user.
type Account struct {
	Email     string
	Password  string
	UserType  string
	Role      string
	UserID    int
	FirstName string
	LastName  string
}

type claims struct {
	jwt.StandardClaims
	Email    string `json:"email"`
	UserType string `json:"userType"`
	Role     string `json:"role"`
}

// Server fakes the portal backend over a real HTTP listener.
type Server struct {
	srv *httptest.Server

	mu             sync.Mutex
	accounts       []Account
	adminInbox     []notify.Notification
	studentInboxes map[int][]notify.Notification
	universities   []catalog.University
	programs       []catalog.Program
	applications   []application.Application
	students       []directory.Student
	admins         []directory.Admin
	messages       []contact.Message
	payments       []payment.Payment
	nextID         int

	// failure injection; mutate via the setters
	FailNotifications bool         // every notification list returns 500
	FailMarkRead      map[int]bool // mark-read fails for these ids
}

// SetFailNotifications toggles notification-list failures.
func (s *Server) SetFailNotifications(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailNotifications = fail
}

// SetFailMarkRead makes mark-read fail for the given notification.
func (s *Server) SetFailMarkRead(id int, fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailMarkRead[id] = fail
}

func New() *Server {
	s := &Server{
		studentInboxes: make(map[int][]notify.Notification),
		FailMarkRead:   make(map[int]bool),
		nextID:         1000,
	}

	e := echo.New()
	e.Logger.SetLevel(log.OFF)
	e.HideBanner = true

	e.POST("/auth/login", s.login)
	e.POST("/auth/register/student", s.registerStudent)
	e.POST("/auth/register/admin", s.registerAdmin)

	n := e.Group("/notifications", s.requireAuth)
	n.GET("/admin", s.adminNotifications)
	n.GET("/student/:id", s.studentNotifications)
	n.PUT("/:id/mark-read", s.markNotificationRead)
	n.DELETE("/:id", s.deleteNotification)

	e.GET("/universities", s.listUniversities)
	e.GET("/universities/:id", s.getUniversity)
	e.POST("/universities", s.createUniversity, s.requireAuth)
	e.PUT("/universities/:id", s.updateUniversity, s.requireAuth)
	e.DELETE("/universities/:id", s.deleteUniversity, s.requireAuth)

	e.GET("/programs", s.listPrograms)
	e.GET("/programs/university/:id", s.programsByUniversity)
	e.POST("/programs", s.createProgram, s.requireAuth)

	a := e.Group("", s.requireAuth)
	a.GET("/applications", s.listApplications)
	a.GET("/applications/student/:id", s.applicationsByStudent)
	a.POST("/students/:id/application", s.submitApplication)
	a.PATCH("/applications/:id/status", s.updateApplicationStatus)
	a.POST("/files/upload-cv", s.uploadCV)

	a.GET("/students", s.listStudents)
	a.GET("/admins", s.listAdmins)

	e.POST("/contact-messages", s.sendMessage)
	a.GET("/contact-messages", s.listMessages)
	a.PATCH("/contact-messages/:id/mark-read", s.markMessageRead)
	a.GET("/contact-messages/unread-count", s.unreadMessageCount)

	a.GET("/payments", s.listPayments)
	a.POST("/payments/upload", s.uploadPayment)
	a.PATCH("/payments/:id/status", s.updatePaymentStatus)

	s.srv = httptest.NewServer(e)
	return s
}

// URL is the base URL clients should point at.
func (s *Server) URL() string { return s.srv.URL }

func (s *Server) Close() { s.srv.Close() }

// AddAccount registers a login-able user.
func (s *Server) AddAccount(acc Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, acc)
}

// SeedAdminInbox replaces the admin broadcast inbox.
func (s *Server) SeedAdminInbox(items ...notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminInbox = append([]notify.Notification(nil), items...)
}

// SeedStudentInbox replaces one student's inbox.
func (s *Server) SeedStudentInbox(studentID int, items ...notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studentInboxes[studentID] = append([]notify.Notification(nil), items...)
}

// SeedUniversities replaces the university catalog.
func (s *Server) SeedUniversities(items ...catalog.University) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.universities = append([]catalog.University(nil), items...)
}

// Payments returns a copy of the uploaded payments.
func (s *Server) Payments() []payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]payment.Payment(nil), s.payments...)
}

// Applications returns a copy of the submitted applications.
func (s *Server) Applications() []application.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]application.Application(nil), s.applications...)
}

func (s *Server) id() int {
	s.nextID++
	return s.nextID
}

func errJSON(ctx echo.Context, code int, msg string) error {
	return ctx.JSON(code, echo.Map{"error": msg})
}

// requireAuth accepts any request bearing a token this server signed.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get("Authorization")
		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			return errJSON(ctx, http.StatusUnauthorized, "missing bearer token")
		}
		token, err := jwt.ParseWithClaims(header[len(prefix):], &claims{}, func(*jwt.Token) (interface{}, error) {
			return signingKey, nil
		})
		if err != nil || !token.Valid {
			return errJSON(ctx, http.StatusUnauthorized, "invalid token")
		}
		return next(ctx)
	}
}

func (s *Server) login(ctx echo.Context) error {
	var creds session.Credentials
	if err := ctx.Bind(&creds); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "malformed request")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Email != creds.Email || acc.Password != creds.Password {
			continue
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
			StandardClaims: jwt.StandardClaims{
				Subject:   strconv.Itoa(acc.UserID),
				ExpiresAt: time.Now().Add(time.Hour).Unix(),
				IssuedAt:  time.Now().Unix(),
			},
			Email:    acc.Email,
			UserType: acc.UserType,
			Role:     acc.Role,
		})
		signed, err := token.SignedString(signingKey)
		if err != nil {
			return errJSON(ctx, http.StatusInternalServerError, "signing token")
		}
		return ctx.JSON(http.StatusOK, echo.Map{
			"token":     signed,
			"userType":  acc.UserType,
			"role":      acc.Role,
			"email":     acc.Email,
			"userId":    acc.UserID,
			"firstName": acc.FirstName,
			"lastName":  acc.LastName,
		})
	}
	return errJSON(ctx, http.StatusUnauthorized, "Invalid email or password")
}

func (s *Server) registerStudent(ctx echo.Context) error {
	var data session.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "malformed request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Email == data.Email {
			return errJSON(ctx, http.StatusConflict, "Email already registered")
		}
	}
	id := s.id()
	s.accounts = append(s.accounts, Account{
		Email: data.Email, Password: data.Password, UserType: session.TypeStudent,
		Role: session.TypeStudent, UserID: id, FirstName: data.FirstName, LastName: data.LastName,
	})
	s.students = append(s.students, directory.Student{
		ID: id, FirstName: data.FirstName, LastName: data.LastName,
		Email: data.Email, PhoneNumber: data.PhoneNumber, Country: data.Country,
		CreatedAt: time.Now().UTC(),
	})
	return ctx.NoContent(http.StatusCreated)
}

func (s *Server) registerAdmin(ctx echo.Context) error {
	var data session.NewAdmin
	if err := ctx.Bind(&data); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "malformed request")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.accounts = append(s.accounts, Account{
		Email: data.Email, Password: data.Password, UserType: session.TypeAdmin,
		Role: data.Role, UserID: id, FirstName: data.FirstName, LastName: data.LastName,
	})
	s.admins = append(s.admins, directory.Admin{
		ID: id, FirstName: data.FirstName, LastName: data.LastName, Email: data.Email,
		Role: data.Role, CreatedAt: time.Now().UTC(),
	})
	return ctx.NoContent(http.StatusCreated)
}
