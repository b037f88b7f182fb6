package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weatherpets/vmath"
	"github.com/lixenwraith/weatherpets/weather"
)

func mockCatalog() (*Catalog, *weather.Snapshot) {
	snap := weather.MockSnapshot()
	return BuildCatalog(snap.Names()), snap
}

func TestBuildCatalog_DefaultPositions(t *testing.T) {
	cat, _ := mockCatalog()
	require.Equal(t, 18, cat.Len())

	entries := cat.Entries()
	assert.Equal(t, "france", entries[0].ID)
	assert.Equal(t, "France", entries[0].DisplayName)
	assert.Equal(t, vmath.Vec2{X: 20, Y: 20}, entries[0].DefaultPosition)
	assert.Equal(t, vmath.Vec2{X: 30, Y: 35}, entries[1].DefaultPosition)
	// i=4: x = 20 + 40%60, y = 20 + 60%60
	assert.Equal(t, vmath.Vec2{X: 60, Y: 20}, entries[4].DefaultPosition)
	// i=6: x = 20 + 60%60, y = 20 + 90%60
	assert.Equal(t, vmath.Vec2{X: 20, Y: 50}, entries[6].DefaultPosition)

	for _, e := range entries {
		assert.GreaterOrEqual(t, e.DefaultPosition.X, 10.0)
		assert.LessOrEqual(t, e.DefaultPosition.X, 90.0)
		assert.GreaterOrEqual(t, e.DefaultPosition.Y, 10.0)
		assert.LessOrEqual(t, e.DefaultPosition.Y, 90.0)
	}
}

func TestCatalog_Resolve(t *testing.T) {
	cat := BuildCatalog([]string{"France", "USA"})

	e, ok := cat.Resolve("usa")
	require.True(t, ok)
	assert.Equal(t, "USA", e.DisplayName)

	e, ok = cat.Resolve("FRANCE")
	require.True(t, ok)
	assert.Equal(t, "france", e.ID)

	_, ok = cat.Resolve("United States of America")
	assert.False(t, ok)
}

func TestRecompute_FranceJapan(t *testing.T) {
	cat, snap := mockCatalog()

	pets := Recompute([]string{"france", "japan"}, cat, snap, nil)
	require.Len(t, pets, 2)

	assert.Equal(t, "france", pets[0].ID)
	assert.Equal(t, "France", pets[0].Name)
	assert.Equal(t, Happy, pets[0].Mood)
	assert.Equal(t, weather.Clear, pets[0].Weather.Condition)

	assert.Equal(t, "japan", pets[1].ID)
	assert.Equal(t, Gloomy, pets[1].Mood)
	assert.Equal(t, weather.Rain, pets[1].Weather.Condition)
}

func TestRecompute_UnknownIDDroppedSilently(t *testing.T) {
	cat, snap := mockCatalog()

	assert.Empty(t, Recompute([]string{"atlantis"}, cat, snap, nil))

	pets := Recompute([]string{"atlantis", "italy"}, cat, snap, nil)
	require.Len(t, pets, 1)
	assert.Equal(t, "italy", pets[0].ID)
}

func TestRecompute_CaseInsensitiveIDs(t *testing.T) {
	cat, snap := mockCatalog()
	pets := Recompute([]string{"JAPAN"}, cat, snap, nil)
	require.Len(t, pets, 1)
	assert.Equal(t, "japan", pets[0].ID)
}

func TestRecompute_OrderFollowsActiveSet(t *testing.T) {
	cat, snap := mockCatalog()
	active := []string{"italy", "canada", "france", "uk"}
	pets := Recompute(active, cat, snap, nil)
	require.Len(t, pets, len(active))
	for i, id := range active {
		assert.Equal(t, id, pets[i].ID)
	}
}

func TestRecompute_PreservesPositionAcrossFeedTicks(t *testing.T) {
	cat, snap := mockCatalog()
	feed := weather.NewFeed(weather.FeedConfig{Initial: snap})

	pets := Recompute([]string{"france", "japan"}, cat, feed.Snapshot(), nil)
	pets[0].Position = vmath.Vec2{X: 73.25, Y: 11.5}

	for i := 0; i < 3; i++ {
		pets = Recompute([]string{"france", "japan"}, cat, feed.Tick(), pets)
	}

	require.Len(t, pets, 2)
	assert.Equal(t, vmath.Vec2{X: 73.25, Y: 11.5}, pets[0].Position)
	def, _ := cat.Lookup("japan")
	assert.Equal(t, def.DefaultPosition, pets[1].Position)
}

func TestRecompute_NewActivationStartsAtDefault(t *testing.T) {
	cat, snap := mockCatalog()
	pets := Recompute([]string{"france"}, cat, snap, nil)
	pets[0].Position = vmath.Vec2{X: 50, Y: 50}

	pets = Recompute([]string{"france", "egypt"}, cat, snap, pets)
	require.Len(t, pets, 2)
	def, _ := cat.Lookup("egypt")
	assert.Equal(t, def.DefaultPosition, pets[1].Position)
	assert.Equal(t, vmath.Vec2{X: 50, Y: 50}, pets[0].Position)
}

func TestRecompute_ReactivationResetsToDefault(t *testing.T) {
	cat, snap := mockCatalog()
	pets := Recompute([]string{"spain"}, cat, snap, nil)
	pets[0].Position = vmath.Vec2{X: 88, Y: 88}

	pets = Recompute(nil, cat, snap, pets)
	assert.Empty(t, pets)

	pets = Recompute([]string{"spain"}, cat, snap, pets)
	def, _ := cat.Lookup("spain")
	assert.Equal(t, def.DefaultPosition, pets[0].Position)
}

func TestRecompute_MissingFeedEntryDrops(t *testing.T) {
	cat, _ := mockCatalog()
	partial := weather.NewSnapshot(
		[]string{"France"},
		map[string]weather.Observation{"France": {TempC: 10, Condition: weather.Clear}},
		1,
	)
	pets := Recompute([]string{"france", "japan"}, cat, partial, nil)
	require.Len(t, pets, 1)
	assert.Equal(t, "france", pets[0].ID)
}

func TestMoodFor_AllConditions(t *testing.T) {
	for _, c := range weather.Conditions() {
		want := Gloomy
		if c == weather.Clear {
			want = Happy
		}
		assert.Equal(t, want, MoodFor(c), c.String())
	}
}

func TestSelection_ClearsWhenPetVanishes(t *testing.T) {
	cat, snap := mockCatalog()
	pets := Recompute([]string{"france", "japan"}, cat, snap, nil)

	var sel Selection
	sel.Select("japan")
	p := sel.Reconcile(pets)
	require.NotNil(t, p)
	assert.Equal(t, "japan", p.ID)

	pets = Recompute([]string{"france"}, cat, snap, pets)
	assert.Nil(t, sel.Reconcile(pets))
	_, ok := sel.ID()
	assert.False(t, ok)
}
