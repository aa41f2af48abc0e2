package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) Google(ctx context.Context) error {
	f.calls = append(f.calls, "google")
	return nil
}
func (f *fakeExec) Forgot(ctx context.Context) error {
	f.calls = append(f.calls, "forgot")
	return nil
}
func (f *fakeExec) Blogs(ctx context.Context, category, search string) error {
	f.calls = append(f.calls, "blogs")
	f.arg = category + "|" + search
	return nil
}
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show")
	f.arg = id
	return nil
}
func (f *fakeExec) MyPosts(ctx context.Context) error {
	f.calls = append(f.calls, "myposts")
	return nil
}
func (f *fakeExec) Post(ctx context.Context) error { f.calls = append(f.calls, "post"); return nil }
func (f *fakeExec) Publish(ctx context.Context) error {
	f.calls = append(f.calls, "publish")
	return nil
}
func (f *fakeExec) Update(ctx context.Context, id string) error {
	f.calls = append(f.calls, "update")
	f.arg = id
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	f.arg = id
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"blogs Technology react hooks",
		"show b123",
		"myposts",
		"post",
		"delete p1",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "blogs", "show", "myposts", "post", "delete"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_BlogsArgsAreSplit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("blogs Technology react hooks\nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if exec.arg != "Technology|react hooks" {
		t.Fatalf("blogs args: %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("show\nupdate\ndelete\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
