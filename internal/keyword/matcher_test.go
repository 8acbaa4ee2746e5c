package keyword

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupByName(t *testing.T, name string) Group {
	t.Helper()
	for _, g := range DefaultGroups() {
		if g.Name == name {
			return g
		}
	}
	t.Fatalf("no default group %q", name)
	return Group{}
}

func TestRespondStressed(t *testing.T) {
	m := Default()
	stress := groupByName(t, "stress")

	for range 50 {
		assert.Contains(t, stress.Responses, m.Respond("I'm so STRESSED out"))
	}
}

func TestRespondUnmatchedUsesDefaults(t *testing.T) {
	m := Default()

	for range 50 {
		assert.Contains(t, DefaultResponses(), m.Respond("xyzzy plugh"))
	}
}

func TestMatchFirstGroupWins(t *testing.T) {
	m := Default()

	// "this" contains "hi", so greeting wins over work.
	g, ok := m.Match("this job")
	require.True(t, ok)
	assert.Equal(t, "greeting", g.Name)

	g, ok = m.Match("my boss and my partner")
	require.True(t, ok)
	assert.Equal(t, "work", g.Name)

	_, ok = m.Match("")
	assert.False(t, ok)
}

func TestMatchMultiWordTrigger(t *testing.T) {
	g, ok := Default().Match("I CAN'T SLEEP at night")
	require.True(t, ok)
	assert.Equal(t, "sleep", g.Name)
}

func TestWithRandIsReproducible(t *testing.T) {
	a := Default(WithRand(rand.New(rand.NewPCG(1, 2))))
	b := Default(WithRand(rand.New(rand.NewPCG(1, 2))))

	for range 20 {
		assert.Equal(t, a.Respond("hello"), b.Respond("hello"))
	}
}

func TestNewNormalizesGroups(t *testing.T) {
	m := New([]Group{
		{Name: "empty", Triggers: []string{"anything"}},
		{Name: "shout", Triggers: []string{"  LOUD ", ""}, Responses: []string{"quiet please"}},
	}, nil)

	_, ok := m.Match("anything")
	assert.False(t, ok, "groups without responses never match")

	assert.Equal(t, "quiet please", m.Respond("so loud here"))
	assert.Empty(t, m.Respond("nothing"))
}

func TestRespondConcurrent(t *testing.T) {
	m := Default(WithRand(rand.New(rand.NewPCG(3, 4))))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = m.Respond("lonely")
			}
		}()
	}
	wg.Wait()
}
