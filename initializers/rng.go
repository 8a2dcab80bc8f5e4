package initializers

import "math/rand"

// RNG needs no explanation
type RNG interface {
	Gen() float64
}

type uniform struct {
	lower, upper float64
	src          *rand.Rand
}

// Uniform returns an RNG that gives values uniformly spread between its
// bounds, which can be set by Bounds. The defaults are -1 and 1.
func Uniform() *uniform {
	return &uniform{lower: -1, upper: 1}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	u.lower = lower
	u.upper = upper
	return u
}

// Seed makes the RNG draw from its own deterministic source instead of the
// shared global one.
func (u *uniform) Seed(seed int64) *uniform {
	u.src = rand.New(rand.NewSource(seed))
	return u
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	if u.src != nil {
		return u.src.Float64()*(u.upper-u.lower) + u.lower
	}
	return rand.Float64()*(u.upper-u.lower) + u.lower
}

type normal struct {
	mean, sd float64
	src      *rand.Rand
}

// Normal returns an RNG that gives values within a normal distribution. The
// center and standard deviation can be set by Mean and SD, respectively, and
// default to 0 and 1.
func Normal() *normal {
	return &normal{mean: 0, sd: 1}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.sd = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.mean = mean
	return n
}

// Seed makes the RNG draw from its own deterministic source instead of the
// shared global one.
func (n *normal) Seed(seed int64) *normal {
	n.src = rand.New(rand.NewSource(seed))
	return n
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	if n.src != nil {
		return n.src.NormFloat64()*n.sd + n.mean
	}
	return rand.NormFloat64()*n.sd + n.mean
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within a truncated normal
// distribution. The distribution is truncated at 2 standard deviations. The
// center and standard deviation can be set in the same way as Normal, because
// Normal is embedded in the TruncNormal type.
//
// Additionally, the number of standard deviations to truncate at can be set
// by Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc
// will panic if given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Gen is the implementation of RNG for TruncNormal. It returns a random
// number.
func (t *truncNormal) Gen() float64 {
	for {
		v := t.normal.Gen()
		if d := (v - t.mean) / t.sd; d < -t.trunc || d > t.trunc {
			continue
		}

		return v
	}
}
