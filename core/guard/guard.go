// Package guard decides, per navigation, whether the requester may render a
// given screen. Decisions are ordered and the first match wins; authenticated
// but unauthorized users get terminal denial states, never a login redirect.
package guard

import "github.com/trezcool/safari/core/session"

// Decision is the outcome of an access check.
type Decision int

const (
	// Loading means the session store has not finished initializing; render a
	// neutral state and never redirect yet, or a returning authenticated user
	// would be treated as a guest on refresh.
	Loading Decision = iota
	// RedirectToLogin sends an unauthenticated user to the login screen,
	// preserving the originally requested target.
	RedirectToLogin
	// AccessDenied is the terminal state for an authenticated principal whose
	// user type is not in the allowed set.
	AccessDenied
	// InsufficientRole is rendered when an exact role is required and the
	// principal's role does not match; both roles are reported.
	InsufficientRole
	// AdminCheckFailed means the principal is typed ADMIN but the derived
	// predicate disagrees; the user is directed to re-login. This is a
	// consistency check against stale or partially-migrated stored sessions.
	AdminCheckFailed
	// StudentAreaOnly means a student-only screen was hit by a principal not
	// typed STUDENT; the user is directed to re-login.
	StudentAreaOnly
	// Allow renders the requested screen.
	Allow
)

var decisionNames = map[Decision]string{
	Loading:          "Loading",
	RedirectToLogin:  "RedirectToLogin",
	AccessDenied:     "Access Denied",
	InsufficientRole: "Insufficient Permissions",
	AdminCheckFailed: "Admin Access Required",
	StudentAreaOnly:  "Student Area",
	Allow:            "Allow",
}

func (d Decision) String() string { return decisionNames[d] }

// Session is the view of the session store the guard needs. *session.Store
// satisfies it.
type Session interface {
	Loaded() bool
	IsAuthenticated() bool
	IsAdmin() bool
	IsStudent() bool
	UserType() string
	Role() string
}

var _ Session = (*session.Store)(nil)

// Requirement describes who may render a screen.
type Requirement struct {
	// AllowedTypes is the set of allowed user types; empty means both.
	AllowedTypes []string
	// Role, when set, requires an exact role match.
	Role string
}

func (r Requirement) allowed() []string {
	if len(r.AllowedTypes) == 0 {
		return []string{session.TypeStudent, session.TypeAdmin}
	}
	return r.AllowedTypes
}

func (r Requirement) studentOnly() bool {
	return r.allows(session.TypeStudent) && !r.allows(session.TypeAdmin)
}

func (r Requirement) allows(userType string) bool {
	for _, t := range r.allowed() {
		if t == userType {
			return true
		}
	}
	return false
}

// Result carries the decision plus whatever the denial screen needs to render.
type Result struct {
	Decision Decision
	// Target is the originally requested location, echoed back so login can
	// return the user there.
	Target string
	// RequiredRole and CurrentRole are set for InsufficientRole.
	RequiredRole string
	CurrentRole  string
}

// Check evaluates the decision procedure in order; first match wins.
func Check(sess Session, target string, req Requirement) Result {
	res := Result{Target: target}

	if !sess.Loaded() {
		res.Decision = Loading
		return res
	}
	if !sess.IsAuthenticated() {
		res.Decision = RedirectToLogin
		return res
	}
	if !req.allows(sess.UserType()) {
		// student-only screens get their dedicated denial state instead of the
		// generic one so the user is pointed at the student login
		if req.studentOnly() {
			res.Decision = StudentAreaOnly
			return res
		}
		res.Decision = AccessDenied
		return res
	}
	if req.Role != "" && sess.Role() != req.Role {
		res.Decision = InsufficientRole
		res.RequiredRole = req.Role
		res.CurrentRole = sess.Role()
		return res
	}
	if req.allows(session.TypeAdmin) && sess.UserType() == session.TypeAdmin && !sess.IsAdmin() {
		res.Decision = AdminCheckFailed
		return res
	}
	if req.studentOnly() && sess.UserType() != session.TypeStudent {
		res.Decision = StudentAreaOnly
		return res
	}
	res.Decision = Allow
	return res
}
