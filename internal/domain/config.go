package domain

// Challenge is one week's bonus challenge.
type Challenge struct {
	Week  int    `json:"week"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Config is the competition-wide settings block from the server.
type Config struct {
	CurrentWeek int         `json:"currentWeek"`
	Challenges  []Challenge `json:"challenges"`
}

// DefaultChallenges is the built-in 3-week template, used whenever the
// server omits or empties the challenge list.
func DefaultChallenges() []Challenge {
	return []Challenge{
		{Week: 1, Title: "Not a Water Bottle", Desc: "Bring anything but a water bottle to class. Most creative vessel wins 3 bonus pts (voted on Instagram)."},
		{Week: 2, Title: "TBD", Desc: "Challenge announced Week 2."},
		{Week: 3, Title: "TBD", Desc: "Challenge announced Week 3."},
	}
}

// DefaultConfig returns the week-1 configuration with default challenges.
func DefaultConfig() Config {
	return Config{CurrentWeek: 1, Challenges: DefaultChallenges()}
}

// ChallengeForWeek returns the challenge for the given week, falling back to
// the first default entry when the week is unknown.
func (c Config) ChallengeForWeek(week int) Challenge {
	for _, ch := range c.Challenges {
		if ch.Week == week {
			return ch
		}
	}
	return DefaultChallenges()[0]
}
