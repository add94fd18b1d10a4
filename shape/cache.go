package shape

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Cache remembers the last geometry built and rebuilds only when the
// digest of its inputs changes.
type Cache struct {
	key    uint64
	valid  bool
	paths  []Path
	builds int
}

// Get returns the cached paths for key, calling build on a miss.
func (c *Cache) Get(key uint64, build func() []Path) []Path {
	if c.valid && c.key == key {
		return c.paths
	}
	c.paths = build()
	c.key = key
	c.valid = true
	c.builds++
	return c.paths
}

// Builds returns how many times the cache has rebuilt.
func (c *Cache) Builds() int { return c.builds }

// Reset drops the cached geometry.
func (c *Cache) Reset() {
	c.valid = false
	c.paths = nil
}

type digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newDigest() *digest {
	return &digest{d: xxhash.New()}
}

func (d *digest) float(vs ...float64) {
	for _, v := range vs {
		binary.LittleEndian.PutUint64(d.buf[:], math.Float64bits(v))
		d.d.Write(d.buf[:])
	}
}

func (d *digest) strings(ss []string) {
	d.float(float64(len(ss)))
	for _, s := range ss {
		d.float(float64(len(s)))
		d.d.WriteString(s)
	}
}

func (d *digest) sum() uint64 {
	return d.d.Sum64()
}

// Key digests every input of the bar geometry: data, value domain and
// range (chart height), category range (spacing), offset (inset), width,
// radius, baseline and progress.
func (s BarSpec) Key() uint64 {
	d := newDigest()
	d.strings(s.Categories)
	d.float(float64(len(s.Values)))
	d.float(s.Values...)
	d.float(s.Value.D0, s.Value.D1, s.Value.R0, s.Value.R1)
	d.float(s.Category.R0, s.Category.R1)
	d.float(s.Offset, s.Baseline, s.Width, s.Radius, s.Progress)
	return d.sum()
}

// Key digests every input of the untrimmed line geometry.
func (s LineSpec) Key() uint64 {
	d := newDigest()
	d.strings(s.Categories)
	d.float(float64(len(s.Values)))
	d.float(s.Values...)
	d.float(s.Value.D0, s.Value.D1, s.Value.R0, s.Value.R1)
	d.float(s.Category.R0, s.Category.R1, s.Width)
	return d.sum()
}
