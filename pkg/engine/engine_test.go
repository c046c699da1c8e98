package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceccec/zeropoint/pkg/generator"
	"github.com/ceccec/zeropoint/pkg/identifier"
	"github.com/ceccec/zeropoint/pkg/tag"
)

func TestStrategies(t *testing.T) {
	e := New()
	assert.Equal(t, []Strategy{
		StrategyCustom, StrategyNameMD5, StrategyNameSHA1, StrategyPattern,
		StrategyRandom, StrategyTimeOrdered, StrategyTimeOrderedRandom,
	}, e.Strategies())

	_, err := e.Generator("snowflake")
	assert.Error(t, err)
	_, err = e.GenerateWith("snowflake", generator.Request{})
	assert.Error(t, err)
}

func TestNameStrategy(t *testing.T) {
	assert.Equal(t, StrategyNameMD5, NameStrategy(generator.HashMD5))
	assert.Equal(t, StrategyNameSHA1, NameStrategy(generator.HashSHA1))
	_, err := New().Generator(StrategyName)
	assert.Error(t, err)
}

func TestEveryStrategyOutputIsValid(t *testing.T) {
	e := New()
	req := generator.Request{Name: "n", Data: []int{1}, Tags: tag.Set{Action: tag.ActionSearch}}
	for _, s := range e.Strategies() {
		ids, err := e.GenerateBatch(s, req, 10)
		require.NoError(t, err)
		require.Len(t, ids, 10)
		for _, id := range ids {
			assert.True(t, e.FormatValid(id.String()), "%s: %s", s, id)
			_, err := e.Decode(id.String())
			assert.NoError(t, err)
		}
	}
}

func TestGenerateDecode(t *testing.T) {
	e := New()
	set := tag.Set{Action: tag.ActionClick, Component: tag.ComponentRecord, State: tag.StateActive, Mode: tag.ModeFlowing}

	id := e.GenerateAt(set, 1700000000)
	assert.Equal(t, "6553f100-0000-9005-0001", id.String()[:23])

	a, err := e.Decode(id.String())
	require.NoError(t, err)
	assert.Equal(t, tag.ActionClick, a.Tags.Action)
	assert.Equal(t, tag.ComponentRecord, a.Tags.Component)

	_, err = e.Decode("zz")
	assert.ErrorIs(t, err, identifier.ErrMalformedIdentifier)
}

func TestLosslessEngine(t *testing.T) {
	e := New(generator.WithLayout(generator.LayoutLossless))
	assert.Equal(t, generator.LayoutLossless, e.PatternLayout())

	set := tag.Set{Action: tag.ActionRead, Component: tag.ComponentView, State: tag.StateActive, Mode: tag.ModeConsciousness}
	a, err := e.Decode(e.Generate(set).String())
	require.NoError(t, err)
	assert.Equal(t, set, a.Tags)
}

func TestGenerateFor(t *testing.T) {
	e := New()
	a, err := e.Decode(e.GenerateFor("some text").String())
	require.NoError(t, err)
	assert.Equal(t, tag.ActionRead, a.Tags.Action)
	assert.Equal(t, tag.ComponentText, a.Tags.Component)
}

func TestDeterministic(t *testing.T) {
	e := New()
	first := e.GenerateDeterministic(identifier.NamespaceComponent, "a", generator.HashMD5)
	for i := 0; i < 1000; i++ {
		require.Equal(t, first, e.GenerateDeterministic(identifier.NamespaceComponent, "a", generator.HashMD5))
	}
	assert.NotEqual(t, first, e.GenerateDeterministic(identifier.NamespaceComponent, "b", generator.HashMD5))

	viaStrategy, err := e.GenerateWith(StrategyNameMD5, generator.Request{Namespace: identifier.NamespaceComponent, Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, first, viaStrategy)
}

func TestVoidOperations(t *testing.T) {
	e := New()
	x := e.GenerateRandom()
	v := e.CollapseToVoid(x)
	assert.Equal(t, identifier.VoidText, v.String())
	assert.True(t, e.IsVoid(v))
	assert.False(t, e.IsVoid(x))
	assert.Equal(t, v, e.CollapseToVoid(v))
}

func TestApplyMode(t *testing.T) {
	e := New()
	out := e.ApplyMode(e.GenerateAt(tag.Set{}, 10), tag.ModeFlowOutward)
	assert.Equal(t, identifier.VersionDerived, out.Version())
	assert.Equal(t, identifier.VersionRandom, e.ApplyMode(out, tag.ModeEnergyRaw).Version())
}

func TestConcurrentUse(t *testing.T) {
	e := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				id := e.Generate(tag.Set{Action: tag.ActionSync, Component: tag.ComponentJob})
				a, err := e.Decode(id.String())
				if assert.NoError(t, err) {
					assert.Equal(t, tag.ActionSync, a.Tags.Action)
				}
				_ = e.ApplyMode(id, tag.ModeResonating)
			}
		}()
	}
	wg.Wait()
}
