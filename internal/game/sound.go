package game

// Sound is an effect the game triggers. Playback must not block.
type Sound interface {
	Play()
}

type silentSound struct{}

func (silentSound) Play() {}

// Sounds holds the three effects of the game.
type Sounds struct {
	Wing  Sound // flap
	Hit   Sound // collision with a pipe or the ground
	Point Sound // pipe passed
}

// SilentSounds returns a set of effects that play nothing.
func SilentSounds() Sounds {
	return Sounds{Wing: silentSound{}, Hit: silentSound{}, Point: silentSound{}}
}

// withDefaults replaces missing effects with silent ones.
func (s Sounds) withDefaults() Sounds {
	if s.Wing == nil {
		s.Wing = silentSound{}
	}
	if s.Hit == nil {
		s.Hit = silentSound{}
	}
	if s.Point == nil {
		s.Point = silentSound{}
	}
	return s
}
