package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	xorgbackend "github.com/honeybbq/xorgconf/backend/xorg"
	domain "github.com/honeybbq/xorgconf/domain/xorg"
	xorgrenderer "github.com/honeybbq/xorgconf/pkg/renderer/xorg"
	"github.com/honeybbq/xorgconf/pkg/xorgconf"
)

func newBackend() *xorgbackend.Backend {
	return xorgbackend.New(xorgrenderer.NewPlainTextRenderer(), xorgrenderer.NewNotImplementedParser())
}

func renderSpecFile(t *testing.T, path string) *xorgconf.Bundle {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read spec: %v", err)
	}
	spec, err := domain.Decode(raw, domain.DetectFormat(path))
	if err != nil {
		t.Fatalf("decode spec: %v", err)
	}

	bundle, err := newBackend().RenderSpec(context.Background(), spec, xorgconf.RenderOptions{})
	if err != nil {
		t.Fatalf("RenderSpec failed: %v", err)
	}
	return bundle
}

func TestXorgSimple(t *testing.T) {
	t.Parallel()

	bundle := renderSpecFile(t, filepath.Join("..", "testdata", "xorg", "simple.yaml"))
	got := bundleToText(bundle)

	wantBytes, err := os.ReadFile(filepath.Join("..", "testdata", "xorg", "simple.conf"))
	if err != nil {
		t.Fatalf("read expected conf: %v", err)
	}
	want := string(wantBytes)

	if !compareConfigs(got, want) {
		t.Fatalf("%s", formatConfigDiff(got, want))
	}
}

func TestXorgRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	path := filepath.Join("..", "testdata", "xorg", "simple.yaml")
	first := bundleToText(renderSpecFile(t, path))
	second := bundleToText(renderSpecFile(t, path))

	if first != second {
		t.Fatalf("repeated renders differ:\n%s", formatConfigDiff(second, first))
	}
}
