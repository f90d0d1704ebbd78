package main

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/trezcool/safari/core/application"
	"github.com/trezcool/safari/core/catalog"
	"github.com/trezcool/safari/core/contact"
	"github.com/trezcool/safari/core/directory"
	"github.com/trezcool/safari/core/payment"
	"github.com/trezcool/safari/core/session"
	logsvc "github.com/trezcool/safari/services/logger"
	"github.com/trezcool/safari/services/portalapi"
	"github.com/trezcool/safari/services/portalapi/testserver"
	dummystate "github.com/trezcool/safari/storage/state/dummy"
)

var testLogger = logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))

func setup(t *testing.T) *commandLine {
	srv := testserver.New()
	t.Cleanup(srv.Close)
	srv.AddAccount(testserver.Account{
		Email: "amina@test.cd", Password: "s3cret!", UserType: session.TypeStudent,
		Role: session.TypeStudent, UserID: 42, FirstName: "Amina", LastName: "Kazadi",
	})
	srv.AddAccount(testserver.Account{
		Email: "boss@test.cd", Password: "s3cret!", UserType: session.TypeAdmin,
		Role: "SUPER_ADMIN", UserID: 7, FirstName: "Didi", LastName: "Mbuyi",
	})

	st := dummystate.Open()
	client := portalapi.NewClient(&portalapi.Options{
		BaseURL: srv.URL(),
		Token:   portalapi.TokenFromStorage(st),
		Logger:  testLogger,
	})
	store := session.NewStore(st, client, testLogger)
	store.Load()

	return &commandLine{
		store:   store,
		api:     client,
		catalog: catalog.NewService(client, testLogger),
		apps:    application.NewService(client, testLogger),
		pay:     payment.NewService(client, testLogger),
		contact: contact.NewService(client, testLogger),
		dir:     directory.NewService(client, testLogger),
		log:     testLogger,
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	pwd        string
	wantErr    error
	wantErrStr string
}

func runTests(t *testing.T, cli *commandLine, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		args := append([]string{"portal"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("cli.run() unexpected error = %v", err)
			}
		})
	}
}

func Test_commandLine_login(t *testing.T) {
	cli := setup(t)

	runTests(t, cli, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "login without email", args: []string{"login"}, wantErr: errHelp},
		{
			name: "bad credentials", args: []string{"login", "-email", "amina@test.cd"}, pwd: "wrong",
			wantErrStr: "Invalid email or password",
		},
		{
			name: "admin account on the student portal",
			args: []string{"login", "-email", "boss@test.cd"}, pwd: "s3cret!",
			wantErrStr: "this is an admin account; please use the admin login",
		},
		{
			name: "student account on the admin portal",
			args: []string{"login", "-admin", "-email", "amina@test.cd"}, pwd: "s3cret!",
			wantErrStr: "this account is not an admin; please use the student login",
		},
		{name: "student login", args: []string{"login", "-email", "amina@test.cd"}, pwd: "s3cret!"},
		{name: "whoami", args: []string{"whoami"}},
		{name: "logout", args: []string{"logout"}},
		{name: "admin login", args: []string{"login", "-admin", "-email", "boss@test.cd"}, pwd: "s3cret!"},
	})

	if !cli.store.IsAdmin() {
		t.Error("expected an admin session after admin login")
	}
}

func Test_commandLine_wrongPortalKeepsSession(t *testing.T) {
	cli := setup(t)

	// the backend authenticates the admin account even though the student
	// shell refuses to proceed; the session store reflects the backend
	runTests(t, cli, []cliTest{
		{
			name: "refused on screen",
			args: []string{"login", "-email", "boss@test.cd"}, pwd: "s3cret!",
			wantErrStr: "this is an admin account; please use the admin login",
		},
	})
	if !cli.store.IsAuthenticated() {
		t.Error("expected the backend session to remain established")
	}
}

func Test_commandLine_register(t *testing.T) {
	cli := setup(t)

	runTests(t, cli, []cliTest{
		{name: "missing fields", args: []string{"register", "-email", "new@test.cd"}, wantErr: errHelp},
		{
			name: "weak password",
			args: []string{"register", "-first-name", "Junior", "-last-name", "Ilunga", "-email", "junior@test.cd"},
			pwd:  "12345678", wantErrStr: "password: password cannot be entirely numeric",
		},
		{
			name: "student registration",
			args: []string{"register", "-first-name", "Junior", "-last-name", "Ilunga", "-email", "junior@test.cd",
				"-phone", "+243 999 000 111", "-country", "DRC"},
			pwd: "tr1cky&Unrelated",
		},
		{name: "then login", args: []string{"login", "-email", "junior@test.cd"}, pwd: "tr1cky&Unrelated"},
	})
}

func Test_commandLine_guardedScreens(t *testing.T) {
	cli := setup(t)

	// anonymous: notifications need a session, browsing does not
	runTests(t, cli, []cliTest{
		{
			name: "notifications while signed out", args: []string{"notifications"},
			wantErrStr: "not signed in; run `portal login` first (wanted: notifications)",
		},
		{name: "universities are public", args: []string{"universities"}},
		{name: "programs are public", args: []string{"programs"}},
		{name: "admin login", args: []string{"login", "-admin", "-email", "boss@test.cd"}, pwd: "s3cret!"},
		{
			name: "apply is a student area", args: []string{"apply"},
			wantErrStr: "Student Area: please sign in with the right account",
		},
		{name: "notifications once signed in", args: []string{"notifications"}},
		{name: "students list for admins", args: []string{"students"}},
	})
}
