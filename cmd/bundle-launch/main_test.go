// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/bundle-launch/lib/handoff"
	"github.com/bureau-foundation/bundle-launch/lib/launch"
	"github.com/bureau-foundation/bundle-launch/lib/process"
	"github.com/bureau-foundation/bundle-launch/lib/testutil"
)

// runCommand invokes run with captured output and returns the exit code.
func runCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return process.ExitCode(err), stdout.String(), stderr.String()
}

// forbidExec fails the test if the handoff exec primitive is reached.
func forbidExec(t *testing.T) {
	t.Helper()
	restore := handoff.SetExecFunc(func(path string, _ []string, _ []string) error {
		t.Fatalf("exec of %s was not expected", path)
		return nil
	})
	t.Cleanup(restore)
}

func TestRun_ArgumentCount(t *testing.T) {
	forbidExec(t)

	for _, args := range [][]string{
		{},
		{"/tmp/one", "/tmp/two"},
		{"--debug", "/tmp/one", "/tmp/two", "/tmp/three"},
	} {
		code, _, stderr := runCommand(t, args...)
		if code != launch.ExitInvalidArgs {
			t.Errorf("run(%v) exit code = %d, want %d", args, code, launch.ExitInvalidArgs)
		}
		if !strings.Contains(stderr, "USAGE") {
			t.Errorf("run(%v) did not print usage to stderr:\n%s", args, stderr)
		}
	}
}

func TestRun_ArgumentCountIgnoresConfig(t *testing.T) {
	forbidExec(t)

	// The config file does not exist; a wrong argument count must be
	// reported without trying to read it.
	missingConfig := filepath.Join(t.TempDir(), "missing.yaml")
	code, _, stderr := runCommand(t, "--config", missingConfig)
	if code != launch.ExitInvalidArgs {
		t.Fatalf("exit code = %d, want %d", code, launch.ExitInvalidArgs)
	}
	if strings.Contains(stderr, "missing.yaml") {
		t.Errorf("config file was consulted before the argument check:\n%s", stderr)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	forbidExec(t)

	code, _, stderr := runCommand(t, "--no-such-flag", "/tmp/app")
	if code != launch.ExitInvalidArgs {
		t.Fatalf("exit code = %d, want %d", code, launch.ExitInvalidArgs)
	}
	if !strings.Contains(stderr, "no-such-flag") {
		t.Errorf("stderr does not name the bad flag:\n%s", stderr)
	}
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := runCommand(t, "--help")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"USAGE", "exec/base", "EXIT CODES", "--dry-run"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCommand(t, "--version")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout, "bundle-launch ") {
		t.Errorf("version output = %q", stdout)
	}
}

func TestRun_MissingBundle(t *testing.T) {
	forbidExec(t)
	root := filepath.Join(t.TempDir(), "app")

	code, _, stderr := runCommand(t, "--log-format", "text", root)
	if code != launch.ExitBundleError {
		t.Fatalf("exit code = %d, want %d", code, launch.ExitBundleError)
	}
	if !strings.Contains(stderr, "bundle directory not found") || !strings.Contains(stderr, root) {
		t.Errorf("stderr does not name the missing directory:\n%s", stderr)
	}
	if !strings.Contains(stderr, "application launcher terminated unexpectedly") {
		t.Errorf("stderr missing termination record:\n%s", stderr)
	}
}

func TestRun_EmptyBundlePath(t *testing.T) {
	forbidExec(t)

	code, _, stderr := runCommand(t, "--log-format", "text", "")
	if code != launch.ExitBundleError {
		t.Fatalf("exit code = %d, want %d", code, launch.ExitBundleError)
	}
	if !strings.Contains(stderr, "bundle directory not found") {
		t.Errorf("stderr does not report a missing bundle:\n%s", stderr)
	}
	if strings.Contains(stderr, "USAGE") {
		t.Errorf("usage printed for a bundle error:\n%s", stderr)
	}
}

func TestRun_NotExecutable(t *testing.T) {
	forbidExec(t)
	root := testutil.NewBundle(t, testutil.BundleSpec{ExecutableMode: 0644})

	code, _, stderr := runCommand(t, "--log-format", "text", root)
	if code != launch.ExitBundleError {
		t.Fatalf("exit code = %d, want %d", code, launch.ExitBundleError)
	}
	if !strings.Contains(stderr, "lacks execute permissions") {
		t.Errorf("stderr does not name the permission problem:\n%s", stderr)
	}
}

func TestRun_DryRun(t *testing.T) {
	forbidExec(t)
	t.Setenv("LD_LIBRARY_PATH", "")
	root := testutil.NewBundle(t, testutil.BundleSpec{Icon: true, Metadata: "name: Demo\n"})

	code, stdout, stderr := runCommand(t, "--dry-run", "--debug", "--log-format", "text", root)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr:\n%s", code, stderr)
	}
	for _, want := range []string{"starting application launcher", "bundle validation successful", "icon file found", "dry run"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if stderr != "" {
		t.Errorf("unexpected stderr output:\n%s", stderr)
	}
}

func TestRun_Handoff(t *testing.T) {
	t.Setenv("LD_LIBRARY_PATH", "/usr/lib/previous")
	root := testutil.NewBundle(t, testutil.BundleSpec{Library: true})

	var gotPath string
	var gotArgv, gotEnv []string
	restore := handoff.SetExecFunc(func(path string, argv []string, env []string) error {
		gotPath, gotArgv, gotEnv = path, argv, env
		return os.ErrPermission
	})
	t.Cleanup(restore)

	code, _, stderr := runCommand(t, "--log-format", "text", root)
	if code != launch.ExitExecError {
		t.Fatalf("exit code = %d, want %d", code, launch.ExitExecError)
	}
	if !strings.Contains(stderr, "failed to execute application") {
		t.Errorf("stderr missing exec failure:\n%s", stderr)
	}

	wantPath := filepath.Join(root, "exec", "base")
	if gotPath != wantPath || len(gotArgv) != 1 || gotArgv[0] != wantPath {
		t.Errorf("exec(%q, %v), want exec(%q, [%s])", gotPath, gotArgv, wantPath, wantPath)
	}

	wantLibrary := "LD_LIBRARY_PATH=" + filepath.Join(root, "library") + ":/usr/lib/previous"
	found := false
	for _, entry := range gotEnv {
		if entry == wantLibrary {
			found = true
		}
	}
	if !found {
		t.Errorf("exec environment missing %q", wantLibrary)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	forbidExec(t)
	root := testutil.NewBundle(t, testutil.BundleSpec{Library: true})
	t.Setenv("BUNDLE_TEST_LIBRARY_PATH", "")

	configPath := filepath.Join(t.TempDir(), "launch.yaml")
	content := "log:\n  level: debug\n  format: text\nlaunch:\n  library_variable: BUNDLE_TEST_LIBRARY_PATH\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	code, stdout, stderr := runCommand(t, "--config", configPath, "--dry-run", root)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr:\n%s", code, stderr)
	}
	if got := os.Getenv("BUNDLE_TEST_LIBRARY_PATH"); got != filepath.Join(root, "library") {
		t.Errorf("BUNDLE_TEST_LIBRARY_PATH = %q, want %q", got, filepath.Join(root, "library"))
	}
	if !strings.Contains(stdout, "level=DEBUG") {
		t.Errorf("config log level not applied:\n%s", stdout)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	forbidExec(t)
	root := testutil.NewBundle(t, testutil.BundleSpec{})

	configPath := filepath.Join(t.TempDir(), "launch.yaml")
	if err := os.WriteFile(configPath, []byte("log:\n  format: xml\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	code, _, stderr := runCommand(t, "--config", configPath, root)
	if code != launch.ExitInvalidArgs {
		t.Fatalf("exit code = %d, want %d", code, launch.ExitInvalidArgs)
	}
	if !strings.Contains(stderr, "log.format") {
		t.Errorf("stderr does not explain the config error:\n%s", stderr)
	}
}
