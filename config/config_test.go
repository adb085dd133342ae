package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"odict/logger"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
InitialCapacity: 16
MemoryLimit: 4096
LogLevel: debug
Log:
  Path: logs
`))
	if err != nil {
		t.Fatal(err)
	}
	want := &DictConfig{
		InitialCapacity: 16,
		MemoryLimit:     4096,
		LogLevel:        "debug",
		Log:             logger.Settings{Path: "logs", Name: "odict", Ext: "log", TimeFormat: "2006-01-02"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if c.Level() != logger.DEBUG {
		t.Errorf("level = %v", c.Level())
	}
	opts := c.DictOptions(nil)
	if opts.InitialCapacity != 16 || opts.MemoryLimit != 4096 {
		t.Errorf("options = %+v", opts)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, src := range []string{
		"MemoryLimit: -1",
		"InitialCapacity: -5",
		"LogLevel: loud",
		"InitialCapacity: [1, 2]",
	} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("Parse(%q) succeeded", src)
		}
	}
}

func TestSetupConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odict.yaml")
	if err := os.WriteFile(path, []byte("MemoryLimit: 100\n"), 0644); err != nil {
		t.Fatal(err)
	}
	old := Config
	defer func() { Config = old }()
	if err := SetupConfig(path); err != nil {
		t.Fatal(err)
	}
	if Config.MemoryLimit != 100 || Config.InitialCapacity != 10 {
		t.Errorf("config = %+v", Config)
	}
	if !filepath.IsAbs(Config.ConfigFilePath) {
		t.Errorf("config path = %q", Config.ConfigFilePath)
	}
	if err := SetupConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
