// Package useragent produces Android Chrome web-view user agents.
package useragent

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/ranchfarm/ranch-farmer/internal/ports"
)

type device struct {
	model   string
	android int
	build   string
}

var devices = []device{
	{model: "SM-S918B", android: 14, build: "UP1A.231005.007"},
	{model: "SM-G991B", android: 13, build: "TP1A.220624.014"},
	{model: "SM-A546B", android: 14, build: "UP1A.231005.007"},
	{model: "SM-A525F", android: 12, build: "SP1A.210812.016"},
	{model: "Pixel 8 Pro", android: 14, build: "AP1A.240405.002"},
	{model: "Pixel 7", android: 14, build: "UQ1A.240205.002"},
	{model: "Pixel 6a", android: 13, build: "TQ3A.230901.001"},
	{model: "2201117TG", android: 13, build: "TKQ1.221114.001"},
	{model: "M2101K6G", android: 12, build: "SKQ1.210908.001"},
	{model: "CPH2449", android: 13, build: "TP1A.220905.001"},
	{model: "RMX3630", android: 13, build: "TP1A.220905.001"},
	{model: "V2202", android: 12, build: "SP1A.210812.003"},
}

type chromeBuild struct {
	major int
	build int
	patch [2]int
}

var chromeBuilds = []chromeBuild{
	{major: 120, build: 6099, patch: [2]int{43, 230}},
	{major: 121, build: 6167, patch: [2]int{101, 178}},
	{major: 122, build: 6261, patch: [2]int{64, 119}},
	{major: 123, build: 6312, patch: [2]int{40, 118}},
	{major: 124, build: 6367, patch: [2]int{54, 179}},
	{major: 125, build: 6422, patch: [2]int{52, 165}},
	{major: 126, build: 6478, patch: [2]int{50, 134}},
}

// Generator draws a random device and Chrome build per user agent.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var _ ports.UserAgentGenerator = (*Generator)(nil)

func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rnd: rnd}
}

func (g *Generator) Generate() string {
	g.mu.Lock()
	d := devices[g.rnd.IntN(len(devices))]
	c := chromeBuilds[g.rnd.IntN(len(chromeBuilds))]
	patch := c.patch[0] + g.rnd.IntN(c.patch[1]-c.patch[0]+1)
	g.mu.Unlock()

	return fmt.Sprintf(
		"Mozilla/5.0 (Linux; Android %d; %s Build/%s; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/%d.0.%d.%d Mobile Safari/537.36",
		d.android, d.model, d.build, c.major, c.build, patch,
	)
}
