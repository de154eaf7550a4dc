package curriculum

// Track groups curriculum items into a learning arc.
type Track string

const (
	TrackFoundations  Track = "foundations"
	TrackCoordination Track = "coordination"
	TrackScaling      Track = "scaling"
	TrackMastery      Track = "mastery"
)

// AllTracks returns all tracks in display order.
func AllTracks() []Track {
	return []Track{
		TrackFoundations,
		TrackCoordination,
		TrackScaling,
		TrackMastery,
	}
}

// TrackDisplayName returns a human-readable name for a track.
func TrackDisplayName(t Track) string {
	switch t {
	case TrackFoundations:
		return "Foundations"
	case TrackCoordination:
		return "Agent Coordination"
	case TrackScaling:
		return "Scaling Up"
	case TrackMastery:
		return "Orchestration Mastery"
	default:
		return string(t)
	}
}

// Difficulty is an ordered difficulty rating.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
	Expert
)

// String returns the canonical lowercase name.
func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// ParseDifficulty parses a canonical difficulty name.
// Unknown strings parse as Beginner.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "intermediate":
		return Intermediate
	case "advanced":
		return Advanced
	case "expert":
		return Expert
	default:
		return Beginner
	}
}

// Item is a single unit of learnable content in the curriculum.
// Items are immutable after the catalog is built.
type Item struct {
	ID            string
	Title         string
	Description   string
	Track         Track
	Difficulty    Difficulty
	EstimatedMins int
	OrderIndex    int
	Prerequisites []string
	// Skills lists the tracked skill identifiers this item trains.
	Skills []string
}
