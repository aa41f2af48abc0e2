package authflow

import (
	"context"

	"github.com/blognest/blognest-cli/internal/client/api"
	"github.com/blognest/blognest-cli/internal/client/models"
)

// SessionStore is the slice of the session store the flow needs: it
// records the identity and credential after a successful verification.
type SessionStore interface {
	Login(user *models.User, token string) error
}

// Flow drives the authentication state machine. All methods run on the
// single UI goroutine; the in-flight flag is an advisory guard against
// duplicate submission, not a lock.
//
// Every submit method applies its guards before any dispatch: a failed
// guard sets the step-scoped error and performs no side effect and no
// transition. Network and server failures surface as the step error and
// leave the step unchanged, except on the verify steps, which also clear
// the code buffer and refocus its first slot.
type Flow struct {
	gw       api.Gateway
	sessions SessionStore

	step    Step
	err     string
	notice  string
	loading bool

	email string

	code      *CodeBuffer
	resetCode *CodeBuffer

	authenticated bool
}

func NewFlow(gw api.Gateway, sessions SessionStore) *Flow {
	return &Flow{
		gw:        gw,
		sessions:  sessions,
		step:      StepLogin,
		code:      NewCodeBuffer(),
		resetCode: NewCodeBuffer(),
	}
}

func (f *Flow) Step() Step             { return f.step }
func (f *Flow) Err() string            { return f.err }
func (f *Flow) Notice() string         { return f.notice }
func (f *Flow) Loading() bool          { return f.loading }
func (f *Flow) Email() string          { return f.email }
func (f *Flow) Code() *CodeBuffer      { return f.code }
func (f *Flow) ResetCode() *CodeBuffer { return f.resetCode }

// Authenticated reports whether the flow completed a login. It stays
// true after the flow loops back to StepLogin.
func (f *Flow) Authenticated() bool { return f.authenticated }

func (f *Flow) fail(msg string) {
	f.err = msg
}

func (f *Flow) clearMessages() {
	f.err = ""
	f.notice = ""
}

// SubmitLogin validates the credentials and requests an OTP dispatch.
// On success the flow moves to StepVerify. Passwords are never retained:
// they live only in the submitting form and are handed straight to the
// gateway.
func (f *Flow) SubmitLogin(ctx context.Context, email, password string) {
	if f.step != StepLogin || f.loading {
		return
	}
	f.clearMessages()

	if email == "" || password == "" {
		f.fail("Please enter both email and password")
		return
	}
	if !ValidEmail(email) {
		f.fail("Please enter a valid email address")
		return
	}

	f.loading = true
	err := f.gw.Login(ctx, email, password)
	f.loading = false

	if err != nil {
		f.fail(api.UserMessage(err, "Login failed. Please check your credentials."))
		return
	}

	f.email = email
	f.step = StepVerify
	f.code.Reset()
}

// SubmitGoogle sends a provider-issued ID token for exchange. The
// provider handshake itself happens outside the flow; a failed exchange
// surfaces here and keeps the step at login.
func (f *Flow) SubmitGoogle(ctx context.Context, email, idToken string) {
	if f.step != StepLogin || f.loading {
		return
	}
	f.clearMessages()

	f.loading = true
	err := f.gw.GoogleLogin(ctx, idToken)
	f.loading = false

	if err != nil {
		f.fail(api.UserMessage(err, "Google login failed. Please try again."))
		return
	}

	f.email = email
	f.step = StepVerify
	f.code.Reset()
}

// GoToSignup moves login -> signup. The CLI owns the in-flight password
// strings and drops them on this transition.
func (f *Flow) GoToSignup() {
	if f.step != StepLogin {
		return
	}
	f.clearMessages()
	f.step = StepSignup
}

// GoToLogin moves signup -> login.
func (f *Flow) GoToLogin() {
	if f.step != StepSignup {
		return
	}
	f.clearMessages()
	f.step = StepLogin
}

// GoToForgot moves login -> forgot-password.
func (f *Flow) GoToForgot() {
	if f.step != StepLogin {
		return
	}
	f.clearMessages()
	f.step = StepForgotPassword
}

// SubmitSignup validates the registration fields and requests an OTP
// dispatch. Guard order matches the login page: completeness, email
// shape, confirmation match, then password strength.
func (f *Flow) SubmitSignup(ctx context.Context, email, password, confirmPassword string) {
	if f.step != StepSignup || f.loading {
		return
	}
	f.clearMessages()

	if email == "" || password == "" || confirmPassword == "" {
		f.fail("Please fill in all fields")
		return
	}
	if !ValidEmail(email) {
		f.fail("Please enter a valid email address")
		return
	}
	if password != confirmPassword {
		f.fail("Passwords do not match")
		return
	}
	if msg := PasswordIssue(password); msg != "" {
		f.fail(msg)
		return
	}

	f.loading = true
	err := f.gw.Signup(ctx, email, password)
	f.loading = false

	if err != nil {
		f.fail(api.UserMessage(err, "Signup failed. Please try again."))
		return
	}

	f.email = email
	f.step = StepVerify
	f.code.Reset()
}

// SubmitVerify submits the 6-digit login code. Success records the
// session and loops the flow back to a clean login step. A rejected code
// clears the buffer and refocuses its first slot; the step is unchanged.
func (f *Flow) SubmitVerify(ctx context.Context) {
	if f.step != StepVerify || f.loading {
		return
	}
	f.clearMessages()

	if !f.code.Complete() {
		f.fail("Please enter all 6 digits")
		return
	}

	f.loading = true
	user, token, err := f.gw.VerifyOTP(ctx, f.email, f.code.Code())
	f.loading = false

	if err != nil {
		f.fail(api.UserMessage(err, "Invalid verification code. Please try again."))
		f.code.Reset()
		return
	}

	if err := f.sessions.Login(user, token); err != nil {
		f.fail("Failed to save session: " + err.Error())
		f.code.Reset()
		return
	}

	f.authenticated = true
	f.reset()
	f.notice = "Login successful"
}

// Resend re-dispatches the login code. Idempotent from the user's view:
// only the freshest code is meaningful.
func (f *Flow) Resend(ctx context.Context) {
	if f.step != StepVerify || f.loading {
		return
	}
	f.clearMessages()

	f.loading = true
	err := f.gw.ResendOTP(ctx, f.email)
	f.loading = false

	if err != nil {
		f.fail(api.UserMessage(err, "Failed to resend code. Please try again."))
		return
	}
	f.notice = "Verification code has been resent to your email"
}

// Back returns to the login step from verify, forgot-password, or
// reset-verify, clearing the owning step's code buffer.
func (f *Flow) Back() {
	switch f.step {
	case StepVerify:
		f.code.Reset()
	case StepForgotPassword:
	case StepResetVerify:
		f.resetCode.Reset()
	default:
		return
	}
	f.clearMessages()
	f.step = StepLogin
}

// SubmitForgot requests a reset-code dispatch for the given address.
func (f *Flow) SubmitForgot(ctx context.Context, email string) {
	if f.step != StepForgotPassword || f.loading {
		return
	}
	f.clearMessages()

	if !ValidEmail(email) {
		f.fail("Please enter a valid email address")
		return
	}

	f.loading = true
	err := f.gw.ForgotPassword(ctx, email)
	f.loading = false

	if err != nil {
		f.fail(api.UserMessage(err, "Failed to send reset code. Please try again."))
		return
	}

	f.email = email
	f.step = StepResetVerify
	f.resetCode.Reset()
}

// SubmitResetVerify submits the 6-digit reset code. Success moves to the
// reset-password form; rejection clears the buffer and stays put.
func (f *Flow) SubmitResetVerify(ctx context.Context) {
	if f.step != StepResetVerify || f.loading {
		return
	}
	f.clearMessages()

	if !f.resetCode.Complete() {
		f.fail("Please enter all 6 digits")
		return
	}

	f.loading = true
	err := f.gw.VerifyResetOTP(ctx, f.email, f.resetCode.Code())
	f.loading = false

	if err != nil {
		f.fail(api.UserMessage(err, "Invalid reset code. Please try again."))
		f.resetCode.Reset()
		return
	}

	f.step = StepResetPassword
}

// ResendReset re-dispatches the reset code.
func (f *Flow) ResendReset(ctx context.Context) {
	if f.step != StepResetVerify || f.loading {
		return
	}
	f.clearMessages()

	f.loading = true
	err := f.gw.ResendResetOTP(ctx, f.email)
	f.loading = false

	if err != nil {
		f.fail(api.UserMessage(err, "Failed to resend code. Please try again."))
		return
	}
	f.notice = "Reset code has been resent to your email"
}

// SubmitResetPassword validates and submits the new password. Success
// clears all reset fields and returns to login with a success notice.
func (f *Flow) SubmitResetPassword(ctx context.Context, newPassword, confirmNewPassword string) {
	if f.step != StepResetPassword || f.loading {
		return
	}
	f.clearMessages()

	if newPassword == "" || confirmNewPassword == "" {
		f.fail("Please fill in all fields")
		return
	}
	if newPassword != confirmNewPassword {
		f.fail("Passwords do not match")
		return
	}
	if msg := PasswordIssue(newPassword); msg != "" {
		f.fail(msg)
		return
	}

	f.loading = true
	err := f.gw.ResetPassword(ctx, f.email, newPassword)
	f.loading = false

	if err != nil {
		f.fail(api.UserMessage(err, "Failed to reset password. Please try again."))
		return
	}

	f.resetCode.Reset()
	f.step = StepLogin
	f.notice = "Password reset successful. Please sign in."
}

// reset returns the flow to a clean login step, clearing all in-flight
// credentials, buffers, and messages.
func (f *Flow) reset() {
	f.step = StepLogin
	f.email = ""
	f.code.Reset()
	f.resetCode.Reset()
	f.clearMessages()
}
