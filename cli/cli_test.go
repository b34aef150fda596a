// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/router"
	"github.com/danielhkuo/quickly-translate/testutil"
)

type fakeClipboard struct{ text string }

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// startRelay runs a real relay in front of fake providers
func startRelay(t *testing.T, dictionary, pixabay http.HandlerFunc) *httptest.Server {
	t.Helper()
	ups := testutil.NewUpstreams(t, nil, dictionary, pixabay)
	srv := httptest.NewServer(router.NewHandler(ups.Config(), zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, baseURL string) Config {
	return Config{
		BaseURL:         baseURL,
		Timeout:         2 * time.Second,
		StoreDriver:     "sqlite",
		StoreDSN:        filepath.Join(t.TempDir(), "lingo.db"),
		LogLevel:        "error",
		DefaultProvider: "baidu",
		ShowHistory:     true,
		Theme:           "light",
	}
}

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *fakeClipboard) {
	t.Helper()
	var out bytes.Buffer
	clip := &fakeClipboard{}

	app, err := NewApp(context.Background(), cfg, &out, zap.NewNop(), WithClipboard(clip))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app, &out, clip
}

func persistentFlag(cmd *cobra.Command, name string) *pflag.Flag {
	return cmd.PersistentFlags().Lookup(name)
}

func TestCreateRootCommand(t *testing.T) {
	viper.Reset()
	cmd := CreateRootCommand(NewFlags())

	if cmd.Use != "lingo" {
		t.Errorf("Expected Use to be 'lingo', got %s", cmd.Use)
	}

	for _, name := range []string{"config", "api", "timeout", "store-driver", "store-dsn", "log-level"} {
		flag := persistentFlag(cmd, name)
		if flag == nil {
			t.Errorf("Expected persistent flag %q", name)
			continue
		}
		if flag.Usage == "" {
			t.Errorf("Flag %q has no usage text", name)
		}
	}

	translate, _, _ := cmd.Find([]string{"translate"})
	for _, name := range []string{"from", "to", "provider"} {
		if translate.Flags().Lookup(name) == nil {
			t.Errorf("Expected translate flag %q", name)
		}
	}

	for _, name := range []string{"translate", "dict", "photo", "health", "lang", "shell"} {
		if sub, _, err := cmd.Find([]string{name}); err != nil || sub.Name() != name {
			t.Errorf("Expected subcommand %q", name)
		}
	}
}

func TestInitConfig(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "lingo.yaml")
	yaml := `api:
  base_url: http://relay.example:3000
  timeout: 3s
settings:
  auto_copy: true
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("LINGO_SETTINGS_THEME", "dark")

	InitConfig(path)
	cfg := LoadConfig()

	if cfg.BaseURL != "http://relay.example:3000" {
		t.Errorf("Expected base URL from file, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %v", cfg.Timeout)
	}
	if !cfg.AutoCopy {
		t.Error("Expected auto-copy from file")
	}
	if cfg.Theme != "dark" {
		t.Errorf("Expected theme from environment, got %q", cfg.Theme)
	}
	if !cfg.ShowHistory || cfg.DefaultProvider != "baidu" || cfg.StoreDriver != "sqlite" {
		t.Errorf("Expected defaults for unset keys, got %+v", cfg)
	}
}

func TestNewAppRejectsBadSettings(t *testing.T) {
	cfg := testConfig(t, "http://localhost:0")
	cfg.DefaultProvider = "deepl"

	if _, err := NewApp(context.Background(), cfg, &bytes.Buffer{}, zap.NewNop()); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestAppTranslate(t *testing.T) {
	relay := startRelay(t, nil, nil)
	app, out, clip := newTestApp(t, testConfig(t, relay.URL))

	if err := app.Translate(context.Background(), "你好", "", "", ""); err != nil {
		t.Fatalf("Translate failed: %s", UserMessage(err))
	}

	if got := strings.TrimSpace(out.String()); got != "[en] 你好" {
		t.Errorf("Unexpected output %q", got)
	}
	if app.history.Len() != 1 {
		t.Errorf("Expected one history record, got %d", app.history.Len())
	}
	if app.pair.Text() != "你好" {
		t.Errorf("Expected pending text saved, got %q", app.pair.Text())
	}
	if clip.text != "" {
		t.Error("Auto-copy is off, clipboard should be untouched")
	}

	// Empty text reuses the pending text
	out.Reset()
	if err := app.Translate(context.Background(), "", "", "jp", ""); err != nil {
		t.Fatalf("Translate failed: %s", UserMessage(err))
	}
	if got := strings.TrimSpace(out.String()); got != "[jp] 你好" {
		t.Errorf("Unexpected output %q", got)
	}
}

func TestAppTranslateAutoCopy(t *testing.T) {
	relay := startRelay(t, nil, nil)
	cfg := testConfig(t, relay.URL)
	cfg.AutoCopy = true
	app, out, clip := newTestApp(t, cfg)

	if err := app.Translate(context.Background(), "hello", "en", "zh", ""); err != nil {
		t.Fatalf("Translate failed: %s", UserMessage(err))
	}
	if clip.text != "[zh] hello" {
		t.Errorf("Expected translation copied, got %q", clip.text)
	}
	if !strings.Contains(out.String(), "copied") {
		t.Errorf("Expected copy notice, got %q", out.String())
	}
}

func TestAppDict(t *testing.T) {
	entry := `[{"word":"hello","phonetic":"/həˈləʊ/","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"A greeting.","example":"hello there"}]}]}]`
	relay := startRelay(t, testutil.JSONHandler(http.StatusOK, entry), nil)
	app, out, _ := newTestApp(t, testConfig(t, relay.URL))

	if err := app.Dict(context.Background(), "hello"); err != nil {
		t.Fatalf("Dict failed: %s", UserMessage(err))
	}

	for _, want := range []string{"hello /həˈləʊ/", "noun", "1. A greeting.", "e.g. hello there"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestAppDictNotFound(t *testing.T) {
	relay := startRelay(t, testutil.JSONHandler(http.StatusNotFound, `{}`), nil)
	app, _, _ := newTestApp(t, testConfig(t, relay.URL))

	err := app.Dict(context.Background(), "qwzx")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("Expected upstream error, got %v", err)
	}
	if UserMessage(err) != "definition not found" {
		t.Errorf("Unexpected message %q", UserMessage(err))
	}
}

func TestAppPhoto(t *testing.T) {
	hits := `{"hits":[{"id":7,"previewURL":"https://cdn.example/a.jpg"},{"id":3,"previewURL":"https://cdn.example/b.jpg"}]}`
	relay := startRelay(t, nil, testutil.JSONHandler(http.StatusOK, hits))
	app, out, _ := newTestApp(t, testConfig(t, relay.URL))

	if err := app.Photo(context.Background(), "apple"); err != nil {
		t.Fatalf("Photo failed: %s", UserMessage(err))
	}

	want := "7\thttps://cdn.example/a.jpg\n3\thttps://cdn.example/b.jpg\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestAppHealthRelayDown(t *testing.T) {
	relay := startRelay(t, nil, nil)
	app, out, _ := newTestApp(t, testConfig(t, relay.URL))

	if err := app.Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %s", UserMessage(err))
	}
	if !strings.Contains(out.String(), "ok") {
		t.Errorf("Expected ok status, got %q", out.String())
	}

	relay.Close()
	err := app.Health(context.Background())
	if !apperr.Is(err, apperr.KindUnreachable) {
		t.Fatalf("Expected unreachable error, got %v", err)
	}
	if UserMessage(err) != "cannot reach translation service, check that the relay is running" {
		t.Errorf("Unexpected message %q", UserMessage(err))
	}
}

func TestLanguagesPersistAcrossRuns(t *testing.T) {
	cfg := testConfig(t, "http://localhost:0")
	ctx := context.Background()

	first, _, _ := newTestApp(t, cfg)
	if err := first.SetLanguages(ctx, "fra", "de"); err != nil {
		t.Fatalf("SetLanguages failed: %v", err)
	}
	if err := first.SetLanguages(ctx, "xx", ""); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("Expected validation error for unknown code, got %v", err)
	}
	first.Close()

	second, out, _ := newTestApp(t, cfg)
	second.ShowLanguages()
	if got := strings.TrimSpace(out.String()); got != "fra (French) -> de (German)" {
		t.Errorf("Unexpected pair %q", got)
	}
}

func TestShell(t *testing.T) {
	relay := startRelay(t, nil, nil)
	app, out, _ := newTestApp(t, testConfig(t, relay.URL))

	input := strings.Join([]string{
		"hello",
		":swap",
		"world",
		":history",
		":theme",
		":autocopy",
		":rm nope",
		":bogus",
		":quit",
		"never reached",
	}, "\n")

	if err := app.Shell(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("Shell failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"[zh -> en] > ",
		"[en] hello",
		"en (English) -> zh (Chinese)",
		"[en -> zh] > ",
		"[zh] world",
		"world => [zh] world",
		"theme: dark",
		"auto-copy: true",
		"error: no history record nope",
		"unknown command :bogus",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in shell output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "never reached") {
		t.Error("Input after :quit must not be processed")
	}
	if app.history.Len() != 2 {
		t.Errorf("Expected 2 history records, got %d", app.history.Len())
	}
}

func TestShellHistoryHidden(t *testing.T) {
	cfg := testConfig(t, "http://localhost:0")
	cfg.ShowHistory = false
	app, out, _ := newTestApp(t, cfg)

	if err := app.Shell(context.Background(), strings.NewReader(":history\n")); err != nil {
		t.Fatalf("Shell failed: %v", err)
	}
	if !strings.Contains(out.String(), "history is hidden") {
		t.Errorf("Expected hidden notice, got %q", out.String())
	}
}

func TestLangCommand(t *testing.T) {
	viper.Reset()
	dsn := filepath.Join(t.TempDir(), "lingo.db")

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		cmd := CreateRootCommand(NewFlags())
		cmd.SetOut(&out)
		cmd.SetArgs(append(args, "--store-dsn", dsn, "--log-level", "error"))
		if err := cmd.Execute(); err != nil {
			t.Fatalf("lingo %v failed: %v", args, err)
		}
		return strings.TrimSpace(out.String())
	}

	if got := run("lang"); got != "zh (Chinese) -> en (English)" {
		t.Errorf("Unexpected default pair %q", got)
	}
	run("lang", "set", "--to", "kor")
	if got := run("lang", "swap"); got != "kor (Korean) -> zh (Chinese)" {
		t.Errorf("Unexpected swapped pair %q", got)
	}
}
