package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/blognest/blognest-cli/internal/client/authflow"
	"github.com/blognest/blognest-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// report prints the flow's step error or notice, if any.
func (a *App) report() {
	if msg := a.flow.Err(); msg != "" {
		fmt.Println(msg)
		return
	}
	if msg := a.flow.Notice(); msg != "" {
		fmt.Println(msg)
	}
}

// Login prompts for credentials, requests a verification code, and
// drives the 6-digit code entry. On success the session is saved and
// the flow returns to a clean login step.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.flow.SubmitLogin(ctx, email, string(password))
	a.report()

	return a.verifyLoop(ctx)
}

// Signup prompts for registration fields and drives the same
// verification step as Login. A failed submission returns the flow to
// the login step so the next command starts clean.
func (a *App) Signup(ctx context.Context) error {
	a.flow.GoToSignup()

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	a.flow.SubmitSignup(ctx, email, string(password), string(confirm))
	a.report()

	if a.flow.Step() == authflow.StepSignup {
		a.flow.GoToLogin()
		return nil
	}
	return a.verifyLoop(ctx)
}

// verifyLoop runs code entry while the flow sits on the verify step.
func (a *App) verifyLoop(ctx context.Context) error {
	for a.flow.Step() == authflow.StepVerify {
		action, err := readCode(a.reader, a.flow.Code(), os.Stdout)
		if err != nil {
			a.flow.Back()
			return err
		}

		switch action {
		case codeBack:
			a.flow.Back()
			return nil
		case codeResend:
			a.flow.Resend(ctx)
		case codeSubmit:
			a.flow.SubmitVerify(ctx)
		}
		a.report()
	}
	return nil
}

// Forgot runs the reset path: email, reset code, then the new password.
func (a *App) Forgot(ctx context.Context) error {
	a.flow.GoToForgot()

	email, err := getSimpleText(a.reader, "Enter your account email", os.Stdout)
	if err != nil {
		a.flow.Back()
		return err
	}

	a.flow.SubmitForgot(ctx, email)
	a.report()

	if a.flow.Step() == authflow.StepForgotPassword {
		a.flow.Back()
		return nil
	}

	for a.flow.Step() == authflow.StepResetVerify {
		action, err := readCode(a.reader, a.flow.ResetCode(), os.Stdout)
		if err != nil {
			a.flow.Back()
			return err
		}

		switch action {
		case codeBack:
			a.flow.Back()
			return nil
		case codeResend:
			a.flow.ResendReset(ctx)
		case codeSubmit:
			a.flow.SubmitResetVerify(ctx)
		}
		a.report()
	}

	for a.flow.Step() == authflow.StepResetPassword {
		password, err := getPassword("Enter new password", os.Stdout)
		if err != nil {
			return err
		}

		confirm, err := getPassword("Confirm new password", os.Stdout)
		if err != nil {
			common.WipeByteArray(password)
			return err
		}

		a.flow.SubmitResetPassword(ctx, string(password), string(confirm))
		common.WipeByteArray(password)
		common.WipeByteArray(confirm)
		a.report()
	}
	return nil
}

// Logout drops the saved session. Idempotent.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout()
	fmt.Println("Signed out.")
	return nil
}

// Whoami prints the signed-in identity.
func (a *App) Whoami(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	fmt.Println("Signed in as", a.sessions.Email())
	if a.sessions.Expired() {
		fmt.Println("The saved credential has expired; the next request will require a fresh login.")
	}
	return nil
}
