package xorg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentLookup(t *testing.T) {
	doc := NewDocument()
	device := NewDevice("device1", "modesetting")
	monitor := NewMonitor("monitor1")
	screen1 := NewScreen("screen1", device, monitor)
	screen2 := NewScreen("screen2", device, monitor)
	flags := NewServerFlags()

	doc.AddSection(device)
	doc.AddSection(monitor)
	doc.AddSection(screen1)
	doc.AddSection(screen2)
	doc.AddSection(flags)

	t.Run("NoFiltersReturnsEverything", func(t *testing.T) {
		assert.Len(t, doc.Sections("", ""), 5)
	})

	t.Run("TagFilterPreservesOrder", func(t *testing.T) {
		screens := doc.Sections(TagScreen, "")
		require.Len(t, screens, 2)
		assert.Same(t, Section(screen1), screens[0])
		assert.Same(t, Section(screen2), screens[1])
	})

	t.Run("IdentifierFilter", func(t *testing.T) {
		found := doc.Sections("", "screen2")
		require.Len(t, found, 1)
		assert.Same(t, Section(screen2), found[0])
	})

	t.Run("CombinedFilters", func(t *testing.T) {
		section, ok := doc.Section(TagDevice, "device1")
		require.True(t, ok)
		assert.Same(t, Section(device), section)
	})

	t.Run("SectionsWithoutIdentifierNeverMatchIdentifierFilter", func(t *testing.T) {
		assert.Empty(t, doc.Sections(TagServerFlags, "anything"))
	})

	t.Run("LookupMissIsNotAnError", func(t *testing.T) {
		section, ok := doc.Section(TagMonitor, "absent")
		assert.False(t, ok)
		assert.Nil(t, section)
	})
}

func TestDocumentMutation(t *testing.T) {
	t.Run("AddNilIsIgnored", func(t *testing.T) {
		doc := NewDocument()
		doc.AddSection(nil)
		assert.Zero(t, doc.Len())
	})

	t.Run("DuplicateIdentifiersArePermitted", func(t *testing.T) {
		doc := NewDocument()
		doc.AddSection(NewDevice("gpu", "intel"))
		doc.AddSection(NewDevice("gpu", "modesetting"))
		assert.Len(t, doc.Sections(TagDevice, "gpu"), 2)
	})

	t.Run("SetSectionsReplacesInOrder", func(t *testing.T) {
		doc := NewDocument()
		doc.AddSection(NewServerFlags())

		a := NewMonitor("a")
		b := NewMonitor("b")
		doc.SetSections([]Section{b, nil, a})

		require.Equal(t, 2, doc.Len())
		all := doc.All()
		assert.Same(t, Section(b), all[0])
		assert.Same(t, Section(a), all[1])
	})

	t.Run("AllReturnsCopy", func(t *testing.T) {
		doc := NewDocument()
		doc.AddSection(NewModule())
		all := doc.All()
		all[0] = nil
		assert.NotNil(t, doc.All()[0])
	})
}
