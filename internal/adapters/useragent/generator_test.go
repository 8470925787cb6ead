package useragent

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var androidChrome = regexp.MustCompile(`^Mozilla/5\.0 \(Linux; Android \d+; [^;]+ Build/[A-Z0-9.]+; wv\) AppleWebKit/537\.36 \(KHTML, like Gecko\) Version/4\.0 Chrome/\d+\.0\.\d+\.\d+ Mobile Safari/537\.36$`)

func TestGenerateProducesAndroidChromeAgents(t *testing.T) {
	t.Parallel()

	g := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	for range 50 {
		assert.Regexp(t, androidChrome, g.Generate())
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a := NewGenerator(rand.New(rand.NewPCG(7, 7)))
	b := NewGenerator(rand.New(rand.NewPCG(7, 7)))

	assert.Equal(t, a.Generate(), b.Generate())
}

func TestNewGeneratorWithoutSource(t *testing.T) {
	t.Parallel()

	assert.Regexp(t, androidChrome, NewGenerator(nil).Generate())
}
