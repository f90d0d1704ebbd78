package session_test

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/session"
	logsvc "github.com/trezcool/safari/services/logger"
	dummystate "github.com/trezcool/safari/storage/state/dummy"
)

var testLogger = logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))

type apiMock struct {
	loginFunc       func(ctx context.Context, email, password string) (string, session.Principal, error)
	registerStudent func(ctx context.Context, data session.NewStudent) error
	registerAdmin   func(ctx context.Context, data session.NewAdmin) error
}

func (m *apiMock) Login(ctx context.Context, email, password string) (string, session.Principal, error) {
	return m.loginFunc(ctx, email, password)
}
func (m *apiMock) RegisterStudent(ctx context.Context, data session.NewStudent) error {
	return m.registerStudent(ctx, data)
}
func (m *apiMock) RegisterAdmin(ctx context.Context, data session.NewAdmin) error {
	return m.registerAdmin(ctx, data)
}

func studentAPI(token string, p session.Principal) *apiMock {
	return &apiMock{
		loginFunc: func(context.Context, string, string) (string, session.Principal, error) {
			return token, p, nil
		},
	}
}

func TestStore_Login(t *testing.T) {
	ctx := context.Background()
	principal := session.Principal{
		Email: "amina@test.cd", UserType: session.TypeStudent, Role: session.TypeStudent,
		UserID: 42, FirstName: "Amina", LastName: "Kazadi",
	}

	t.Run("success sets session and aliases", func(t *testing.T) {
		st := dummystate.Open()
		store := session.NewStore(st, studentAPI("tok-1", principal), testLogger)
		store.Load()

		res := store.Login(ctx, session.Credentials{Email: "amina@test.cd", Password: "s3cret!"})
		assert.True(t, res.OK)
		assert.Empty(t, res.Error)
		assert.Equal(t, "tok-1", res.Token)
		assert.Equal(t, 42, res.Principal.StudentID)
		assert.Equal(t, 0, res.Principal.AdminID)

		assert.True(t, store.IsAuthenticated())
		assert.True(t, store.IsStudent())
		assert.False(t, store.IsAdmin())
		assert.Equal(t, 42, store.Principal().StudentID)
	})

	t.Run("persisted principal omits derived aliases", func(t *testing.T) {
		st := dummystate.Open()
		store := session.NewStore(st, studentAPI("tok-1", principal), testLogger)
		store.Load()
		store.Login(ctx, session.Credentials{Email: "amina@test.cd", Password: "s3cret!"})

		data, err := st.ReadPrincipal()
		assert.NoError(t, err)
		var raw map[string]interface{}
		assert.NoError(t, json.Unmarshal(data, &raw))
		assert.Contains(t, raw, "userId")
		assert.NotContains(t, raw, "studentId")
		assert.NotContains(t, raw, "adminId")
		assert.NotContains(t, raw, "StudentID")
	})

	t.Run("invalid form never reaches the API", func(t *testing.T) {
		called := false
		api := &apiMock{loginFunc: func(context.Context, string, string) (string, session.Principal, error) {
			called = true
			return "", session.Principal{}, nil
		}}
		store := session.NewStore(dummystate.Open(), api, testLogger)
		store.Load()

		res := store.Login(ctx, session.Credentials{Email: "not-an-email", Password: "x"})
		assert.False(t, res.OK)
		assert.NotEmpty(t, res.Error)
		assert.False(t, called)
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("backend message surfaces on failure", func(t *testing.T) {
		api := &apiMock{loginFunc: func(context.Context, string, string) (string, session.Principal, error) {
			return "", session.Principal{}, core.NewAPIError(401, "Invalid email or password")
		}}
		store := session.NewStore(dummystate.Open(), api, testLogger)
		store.Load()

		res := store.Login(ctx, session.Credentials{Email: "amina@test.cd", Password: "wrong"})
		assert.False(t, res.OK)
		assert.Equal(t, "Invalid email or password", res.Error)
	})

	t.Run("opaque failure falls back to generic message", func(t *testing.T) {
		api := &apiMock{loginFunc: func(context.Context, string, string) (string, session.Principal, error) {
			return "", session.Principal{}, errors.New("connection refused")
		}}
		store := session.NewStore(dummystate.Open(), api, testLogger)
		store.Load()

		res := store.Login(ctx, session.Credentials{Email: "amina@test.cd", Password: "s3cret!"})
		assert.Equal(t, "Login failed", res.Error)
	})

	t.Run("storage failure keeps the session in memory", func(t *testing.T) {
		st := dummystate.Open()
		st.FailWrites = errors.New("disk full")
		store := session.NewStore(st, studentAPI("tok-1", principal), testLogger)
		store.Load()

		res := store.Login(ctx, session.Credentials{Email: "amina@test.cd", Password: "s3cret!"})
		assert.True(t, res.OK)
		assert.True(t, store.IsAuthenticated())
	})
}

func TestStore_Load(t *testing.T) {
	t.Run("empty storage still reports loaded", func(t *testing.T) {
		store := session.NewStore(dummystate.Open(), &apiMock{}, testLogger)
		assert.False(t, store.Loaded())
		store.Load()
		assert.True(t, store.Loaded())
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("rehydrates a stored session and recomputes aliases", func(t *testing.T) {
		st := dummystate.Open()
		assert.NoError(t, st.WriteToken("tok-9"))
		assert.NoError(t, st.WritePrincipal([]byte(
			`{"email":"boss@test.cd","userType":"ADMIN","role":"SUPER_ADMIN","userId":7,"firstName":"Didi","lastName":"Mbuyi"}`,
		)))

		store := session.NewStore(st, &apiMock{}, testLogger)
		store.Load()
		assert.True(t, store.IsAuthenticated())
		assert.True(t, store.IsAdmin())
		assert.Equal(t, "SUPER_ADMIN", store.Role())
		assert.Equal(t, 7, store.Principal().AdminID)
		assert.Equal(t, 0, store.Principal().StudentID)
	})

	t.Run("corrupt principal is ignored", func(t *testing.T) {
		st := dummystate.Open()
		assert.NoError(t, st.WriteToken("tok-9"))
		assert.NoError(t, st.WritePrincipal([]byte(`{nope`)))

		store := session.NewStore(st, &apiMock{}, testLogger)
		store.Load()
		assert.True(t, store.Loaded())
		assert.False(t, store.IsAuthenticated())
	})
}

func TestStore_Logout(t *testing.T) {
	ctx := context.Background()
	st := dummystate.Open()
	store := session.NewStore(st, studentAPI("tok-1", session.Principal{
		Email: "amina@test.cd", UserType: session.TypeStudent, UserID: 42, FirstName: "Amina",
	}), testLogger)
	store.Load()
	store.Login(ctx, session.Credentials{Email: "amina@test.cd", Password: "s3cret!"})
	assert.True(t, store.IsAuthenticated())

	store.Logout()
	assert.False(t, store.IsAuthenticated())
	assert.True(t, store.Principal().IsZero())
	_, err := st.ReadToken()
	assert.Equal(t, session.ErrNoSession, err)
}

func TestStore_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("student registration does not establish a session", func(t *testing.T) {
		api := &apiMock{registerStudent: func(context.Context, session.NewStudent) error { return nil }}
		store := session.NewStore(dummystate.Open(), api, testLogger)
		store.Load()

		res := store.RegisterStudent(ctx, session.NewStudent{
			FirstName: "Amina", LastName: "Kazadi", Email: "amina@test.cd",
			Password: "Str0ng&Safe", PhoneNumber: "+243 999 000 111", Country: "DRC",
		})
		assert.True(t, res.OK)
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("duplicate email message surfaces", func(t *testing.T) {
		api := &apiMock{registerStudent: func(context.Context, session.NewStudent) error {
			return core.NewAPIError(409, "Email already registered")
		}}
		store := session.NewStore(dummystate.Open(), api, testLogger)
		store.Load()

		res := store.RegisterStudent(ctx, session.NewStudent{
			FirstName: "Amina", LastName: "Kazadi", Email: "amina@test.cd", Password: "Str0ng&Safe",
		})
		assert.False(t, res.OK)
		assert.Equal(t, "Email already registered", res.Error)
	})

	t.Run("admin registration validates the role", func(t *testing.T) {
		called := false
		api := &apiMock{registerAdmin: func(context.Context, session.NewAdmin) error {
			called = true
			return nil
		}}
		store := session.NewStore(dummystate.Open(), api, testLogger)
		store.Load()

		res := store.RegisterAdmin(ctx, session.NewAdmin{
			FirstName: "Didi", LastName: "Mbuyi", Email: "boss@test.cd", Password: "Str0ng&Safe",
		})
		assert.False(t, res.OK)
		assert.False(t, called)
	})
}
