package game

import (
	"math"

	"serpent/internal/sim"
)

type Particle struct {
	X, Y    float64 // cell units
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Col     RGB
}

// ParticleSystem runs the short eat-burst effect. Purely cosmetic: it is
// fed by events from the frame loop and never touches the simulation.
type ParticleSystem struct {
	ps  []Particle
	rng *sim.Rand
}

func NewParticleSystem(seed uint64) *ParticleSystem {
	return &ParticleSystem{rng: sim.NewRand(seed)}
}

func (s *ParticleSystem) randF(min, max float64) float64 {
	return min + (max-min)*float64(s.rng.Intn(1<<16))/float64(1<<16)
}

// SpawnBurst scatters particles from the centre of a cell.
func (s *ParticleSystem) SpawnBurst(c sim.Cell, col RGB) {
	cx := float64(c.X) + 0.5
	cy := float64(c.Y) + 0.5
	for i := 0; i < BurstParticles; i++ {
		ang := s.randF(0, 2*math.Pi)
		speed := s.randF(0.5, ParticleSpeedMax)
		life := s.randF(ParticleLifeMin, ParticleLifeMax)
		s.ps = append(s.ps, Particle{
			X: cx, Y: cy,
			VX:      math.Cos(ang) * speed,
			VY:      math.Sin(ang) * speed,
			Life:    life,
			MaxLife: life,
			Size:    s.randF(0.08, 0.22),
			Col:     lerpRGB(col, Palette.Accent, s.randF(0, 0.6)),
		})
	}
}

// Update advances and compacts live particles.
func (s *ParticleSystem) Update(dt float64) {
	out := s.ps[:0]
	for i := range s.ps {
		p := s.ps[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= 1 - 2.5*dt // drag
		p.VY *= 1 - 2.5*dt
		out = append(out, p)
	}
	s.ps = out
}

func (s *ParticleSystem) Clear() {
	s.ps = s.ps[:0]
}

// RenderData appends sprite data for live particles, fading with life.
func (s *ParticleSystem) RenderData(buf []float32) []float32 {
	for i := range s.ps {
		p := &s.ps[i]
		alpha := float32(clampF(p.Life/p.MaxLife, 0, 1))
		buf = appendSprite(buf, p.X, p.Y, p.Size, p.Col, alpha, 0)
	}
	return buf
}
