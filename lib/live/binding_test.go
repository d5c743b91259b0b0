package live

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui/lib/breakpoint"
	"github.com/pthm/hxui/lib/patch"
	"github.com/pthm/hxui/lib/responsive"
	"github.com/pthm/hxui/lib/style"
)

func gridProps() style.Props {
	return style.Props{
		Style: style.Style{"opacity": "1"},
		Tiers: style.Overlays{
			L: &style.Overlay{Hide: style.Bool(true)},
			M: &style.Overlay{Style: style.Style{"opacity": "0.5"}},
			S: &style.Overlay{Hide: style.Bool(false)},
		},
	}
}

func TestBindingFollowsTracker(t *testing.T) {
	node := patch.NewNode([]string{"display-grid"}, style.Style{"opacity": "1"})
	vp := breakpoint.NewManualViewport(1600)
	tr := breakpoint.NewTracker(breakpoint.DefaultTable)
	tr.Mount(vp)
	defer tr.Unmount()

	b := New(Config{Surface: node, Layout: style.Grid, Props: gridProps()})
	b.Activate(tr)
	defer b.Deactivate()

	tier, ok := b.Tier()
	require.True(t, ok)
	assert.Equal(t, breakpoint.XL, tier)
	assert.False(t, b.Hidden())
	assert.False(t, node.HasClass("grid-hide"))

	vp.Resize(1000)
	assert.True(t, b.Hidden(), "l hide trickles down to m")
	assert.True(t, node.HasClass("grid-hide"))
	opacity, _ := node.Property("opacity")
	assert.Equal(t, "0.5", opacity)
	assert.Equal(t, []string{"opacity"}, b.Owned())

	vp.Resize(600)
	assert.False(t, b.Hidden())
	assert.False(t, node.HasClass("grid-hide"))
	opacity, _ = node.Property("opacity")
	assert.Equal(t, "1", opacity, "opacity returns to the base value")
	assert.Empty(t, b.Owned())
}

func TestBindingWithoutTracker(t *testing.T) {
	node := patch.NewNode(nil, nil)
	props := gridProps()
	props.Hide = true

	b := New(Config{Surface: node, Layout: style.Flex, Props: props})
	b.Activate(nil)

	_, ok := b.Tier()
	assert.False(t, ok)
	assert.True(t, b.Hidden())
	assert.True(t, node.HasClass("flex-hide"))
	assert.False(t, b.Active())
}

func TestBindingSubscribesWithoutOverlays(t *testing.T) {
	tr := breakpoint.NewTracker(breakpoint.DefaultTable)
	tr.Update(300)

	b := New(Config{Props: style.Props{}})
	b.Activate(tr)
	assert.Equal(t, 1, tr.Subscribers())
	assert.True(t, b.Active())

	b.Deactivate()
	assert.Equal(t, 0, tr.Subscribers())
	assert.False(t, b.Active())
}

func TestBindingActivatedBeforeMeasurement(t *testing.T) {
	node := patch.NewNode(nil, nil)
	tr := breakpoint.NewTracker(breakpoint.DefaultTable)

	b := New(Config{Surface: node, Layout: style.Grid, Props: gridProps()})
	b.Activate(tr)
	defer b.Deactivate()
	assert.False(t, b.Hidden())

	tr.Mount(breakpoint.StaticViewport(1200))
	defer tr.Unmount()
	assert.True(t, b.Hidden())
}

func TestBindingReactivateMovesSubscription(t *testing.T) {
	first := breakpoint.NewTracker(breakpoint.DefaultTable)
	second := breakpoint.NewTracker(breakpoint.DefaultTable)

	b := New(Config{})
	b.Activate(first)
	b.Activate(second)
	defer b.Deactivate()

	assert.Equal(t, 0, first.Subscribers())
	assert.Equal(t, 1, second.Subscribers())
}

func TestBindingSetBaseStyle(t *testing.T) {
	node := patch.NewNode(nil, nil)
	tr := breakpoint.NewTracker(breakpoint.DefaultTable)
	tr.Update(1000)

	b := New(Config{Surface: node, Props: gridProps()})
	b.Activate(tr)
	defer b.Deactivate()

	b.SetBaseStyle(style.Style{"opacity": "0.9", "color": "red"})
	tr.Update(600)

	assert.Equal(t, style.Style{"opacity": "0.9", "color": "red"}, node.Style())
}

func TestBindingOnChangeAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	tr := breakpoint.NewTracker(breakpoint.DefaultTable)
	tr.Update(100)

	var seen []breakpoint.Tier
	b := New(Config{
		Props:    gridProps(),
		Logger:   &logger,
		OnChange: func(eff responsive.Effective) { seen = append(seen, eff.Tier) },
	})
	b.Activate(tr)
	defer b.Deactivate()
	tr.Update(2000)

	assert.Equal(t, []breakpoint.Tier{breakpoint.XS, breakpoint.XL}, seen)
	assert.Contains(t, buf.String(), `"tier":"xl"`)
	assert.Contains(t, buf.String(), "live: patched element")
}
