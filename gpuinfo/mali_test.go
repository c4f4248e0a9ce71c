package gpuinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMaliGpu(t *testing.T) {
	type testCase struct {
		input  string
		expect MaliGPU
	}

	testCases := map[string]*testCase{
		"valhall g78":     {input: "Mali-G78", expect: MaliG78},
		"valhall g57":     {input: "Mali-G57 MC2", expect: MaliG57},
		"bifrost g76":     {input: "Mali-G76", expect: MaliG76},
		"bifrost g72":     {input: "Mali-G72", expect: MaliG72},
		"bifrost g31":     {input: "Mali-G31", expect: MaliG31},
		"midgard t880":    {input: "Mali-T880", expect: MaliT880},
		"midgard t720":    {input: "Mali-T720", expect: MaliT720},
		"midgard t604":    {input: "Mali-T604", expect: MaliT604},
		"not a mali name": {input: "FooBar123", expect: MaliUnknown},
		"empty":           {input: "", expect: MaliUnknown},
	}

	for k, v := range testCases {
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, v.expect, ParseMaliGpu(v.input))
		})
	}
}

func TestMaliModelKeysUnique(t *testing.T) {
	seen := map[string]MaliGPU{}
	for _, m := range maliModels {
		if prev, ok := seen[m.key]; ok {
			t.Fatalf("key %q maps to both %s and %s", m.key, prev, m.gpu)
		}
		seen[m.key] = m.gpu
	}
}

// Every defined model belongs to exactly one microarchitecture generation;
// the unknown model belongs to none.
func TestMaliGenerationPartition(t *testing.T) {
	for _, m := range maliModels {
		info := MaliInfo{Gpu: m.gpu}
		matches := 0
		for _, p := range []bool{
			info.IsMaliT6xx(), info.IsMaliT7xx(), info.IsMaliT8xx(),
			info.IsBifrostGen1(), info.IsBifrostGen2(), info.IsBifrostGen3(),
			info.IsValhall(),
		} {
			if p {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "model %s", m.gpu)
	}

	unknown := MaliInfo{Gpu: MaliUnknown}
	assert.False(t, unknown.IsMidgard())
	assert.False(t, unknown.IsBifrost())
	assert.False(t, unknown.IsValhall())
}

func TestMaliArchUnions(t *testing.T) {
	g78 := NewMaliInfo("Mali-G78")
	assert.True(t, g78.IsValhall())
	assert.False(t, g78.IsBifrost())
	assert.False(t, g78.IsMidgard())

	t880 := NewMaliInfo("Mali-T880")
	assert.True(t, t880.IsMaliT8xx())
	assert.True(t, t880.IsMidgard())
	assert.False(t, t880.IsBifrost())
	assert.False(t, t880.IsValhall())

	g52 := NewMaliInfo("Mali-G52")
	assert.True(t, g52.IsBifrostGen2())
	assert.True(t, g52.IsBifrost())
	assert.False(t, g52.IsMidgard())
}

func TestMaliString(t *testing.T) {
	assert.Equal(t, "Mali-G78", MaliG78.String())
	assert.Equal(t, "Mali-T880", MaliT880.String())
	assert.Equal(t, "unknown", MaliUnknown.String())

	for _, m := range maliModels {
		assert.NotEqual(t, "unknown", m.gpu.String())
	}
}
