package manifest

import (
	"context"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/je4/declfs/pkg/declfs"
	"github.com/je4/declfs/pkg/memfs"
	"github.com/rs/zerolog"
)

const testManifest = `
[[entry]]
path = "etc/app/config.yaml"
kind = "file"
content = "key: value\n"

[[entry]]
path = "var/cache"
kind = "dir"
mode = "placid"

[[entry]]
path = "etc/app/banner"
kind = "file"
mode = "assertive"
content = "hello"
forward = true
`

func TestManifestRender(t *testing.T) {
	fSys := fstest.MapFS{
		"tree.toml": &fstest.MapFile{Data: []byte(testManifest)},
	}
	var conf Config
	if err := LoadConfig(fSys, "tree.toml", &conf); err != nil {
		t.Fatal(err)
	}
	if len(conf.Entry) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(conf.Entry))
	}
	doc, err := conf.Declaration()
	if err != nil {
		t.Fatal(err)
	}

	nop := zerolog.Nop()
	b := memfs.NewBackend(&nop)
	result, diags := declfs.Render(context.Background(), declfs.WithBackend(b, doc))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if result != "hello" {
		t.Fatalf("expected forwarded content 'hello', got '%s'", result)
	}
	expected := map[string]any{
		"etc": map[string]any{
			"app": map[string]any{
				"config.yaml": "key: value\n",
				"banner":      "hello",
			},
		},
		"var": map[string]any{
			"cache": map[string]any{},
		},
	}
	if !reflect.DeepEqual(b.Snapshot(), expected) {
		t.Fatalf("invalid backend state %v", b.Snapshot())
	}
}

func TestManifestRerender(t *testing.T) {
	// placid and assertive entries tolerate a second render over the
	// same backend, timid entries do not
	fSys := fstest.MapFS{
		"tree.toml": &fstest.MapFile{Data: []byte(testManifest)},
	}
	var conf Config
	if err := LoadConfig(fSys, "tree.toml", &conf); err != nil {
		t.Fatal(err)
	}
	doc, err := conf.Declaration()
	if err != nil {
		t.Fatal(err)
	}
	nop := zerolog.Nop()
	b := memfs.NewBackend(&nop)
	ctx := context.Background()
	if _, diags := declfs.Render(ctx, declfs.WithBackend(b, doc)); len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	_, diags := declfs.Render(ctx, declfs.WithBackend(b, doc))
	if len(diags) != 1 {
		t.Fatalf("expected the timid file entry to conflict, got %v", diags)
	}
}

func TestManifestErrors(t *testing.T) {
	for _, entry := range []*Entry{
		{Path: "a//b", Kind: "file"},
		{Path: "a/../b", Kind: "file"},
		{Path: "x", Kind: "symlink"},
		{Path: "x", Kind: "file", Mode: "bold"},
	} {
		conf := &Config{Entry: []*Entry{entry}}
		if _, err := conf.Declaration(); err == nil {
			t.Fatalf("expected error for entry %+v", entry)
		}
	}
}

func TestLoadConfigMissing(t *testing.T) {
	var conf Config
	if err := LoadConfig(fstest.MapFS{}, "nope.toml", &conf); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
