// Package authflow implements the multi-step authentication state
// machine: login, signup, one-time-code verification, and the
// forgot/reset password path. The flow issues requests through the API
// gateway and, on successful verification, hands the session identity
// and credential to the session store. It performs no terminal I/O; the
// CLI layer drives it.
package authflow

// Step is the closed set of flow states. Exactly one is active at a
// time. The flow starts at StepLogin and has no terminal state: it loops
// back to StepLogin after success or on explicit back.
type Step int

const (
	StepLogin Step = iota
	StepSignup
	StepVerify
	StepForgotPassword
	StepResetVerify
	StepResetPassword
)

func (s Step) String() string {
	switch s {
	case StepLogin:
		return "login"
	case StepSignup:
		return "signup"
	case StepVerify:
		return "verify"
	case StepForgotPassword:
		return "forgot-password"
	case StepResetVerify:
		return "reset-verify"
	case StepResetPassword:
		return "reset-password"
	default:
		return "unknown"
	}
}
