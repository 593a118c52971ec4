package game

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Simulation timing.
const (
	TickInterval = 0.150 // seconds between simulation steps
	MaxFrameDt   = 0.1   // clamp for stalls (window drag, debugger)
)

// Board presentation (sizes in cell units unless noted).
const (
	BoardFill     = 0.92 // fraction of the short window edge the board spans
	MaxSpriteDraw = 4096 // streaming VBO capacity in sprites

	BodySize = 0.92
	HeadSize = 1.0
	FoodSize = 0.78
)

// Food pulse (cosmetic, advances with wall time rather than ticks).
const (
	FoodPulseRate  = 4.0  // size pulse rad/s
	FoodGlowRate   = 3.0  // glow pulse rad/s
	FoodSpinRate   = 1.6  // rotation rad/s
	FoodPulseDepth = 0.07 // size amplitude in cell units
)

// Eat burst particles.
const (
	BurstParticles   = 26
	ParticleLifeMin  = 0.25
	ParticleLifeMax  = 0.60
	ParticleSpeedMax = 6.0 // cells/s
)
