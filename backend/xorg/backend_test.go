package xorg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/honeybbq/xorgconf/domain/xorg"
	ast "github.com/honeybbq/xorgconf/pkg/ast/xorg"
	xorgrenderer "github.com/honeybbq/xorgconf/pkg/renderer/xorg"
	"github.com/honeybbq/xorgconf/pkg/xcerrors"
	"github.com/honeybbq/xorgconf/pkg/xorgconf"
)

func newBackend() *Backend {
	return New(xorgrenderer.NewPlainTextRenderer(), xorgrenderer.NewNotImplementedParser())
}

func TestWriteFile(t *testing.T) {
	backend := newBackend()
	target := filepath.Join(t.TempDir(), "xorg.conf")

	doc := ast.NewDocument()
	doc.AddSection(ast.NewDevice("device1", "modesetting"))

	written, err := backend.WriteFile(context.Background(), doc, target, xorgconf.RenderOptions{})
	require.NoError(t, err)
	assert.True(t, written)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Section \"Device\"")
}

func TestWriteFile_EmptyDocumentSkipsWrite(t *testing.T) {
	backend := newBackend()
	target := filepath.Join(t.TempDir(), "xorg.conf")

	written, err := backend.WriteFile(context.Background(), ast.NewDocument(), target, xorgconf.RenderOptions{})
	require.NoError(t, err)
	assert.False(t, written)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "no file should be created for an empty document")
}

func TestWriteFile_IncompleteSectionFails(t *testing.T) {
	backend := newBackend()
	target := filepath.Join(t.TempDir(), "xorg.conf")

	doc := ast.NewDocument()
	doc.AddSection(ast.NewDevice("", "broken"))

	written, err := backend.WriteFile(context.Background(), doc, target, xorgconf.RenderOptions{})
	require.Error(t, err)
	assert.False(t, written)
	assert.Equal(t, xcerrors.KindIncomplete, xcerrors.KindOf(err))
}

func TestWriteFile_IOErrorIsSurfaced(t *testing.T) {
	backend := newBackend()
	target := filepath.Join(t.TempDir(), "no", "such", "dir", "xorg.conf")

	doc := ast.NewDocument()
	doc.AddSection(ast.NewServerFlags())

	written, err := backend.WriteFile(context.Background(), doc, target, xorgconf.RenderOptions{})
	require.Error(t, err)
	assert.False(t, written)
	assert.Equal(t, xcerrors.KindIO, xcerrors.KindOf(err))
}

func TestRenderSpec(t *testing.T) {
	backend := newBackend()
	spec := &domain.Spec{
		Devices:  []domain.DeviceSpec{{Identifier: "device1", Driver: "modesetting"}},
		Monitors: []domain.MonitorSpec{{Identifier: "monitor1"}},
		Screens:  []domain.ScreenSpec{{Identifier: "screen1", Device: "device1", Monitor: "monitor1"}},
	}

	bundle, err := backend.RenderSpec(context.Background(), spec, xorgconf.RenderOptions{})
	require.NoError(t, err)
	require.Len(t, bundle.Packages, 1)
	assert.Equal(t, "xorg", bundle.Metadata.Format)
	assert.NotEmpty(t, bundle.Metadata.Custom["generation_id"])
}

func TestParseNotImplemented(t *testing.T) {
	backend := newBackend()
	bundle := &xorgconf.Bundle{Packages: []xorgconf.Package{{Name: "xorg.conf"}}}
	_, err := backend.Parse(context.Background(), bundle, xorgconf.ParseOptions{})
	assert.ErrorIs(t, err, xcerrors.ErrNotImplemented)
}
